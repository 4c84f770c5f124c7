// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP layer for Reelmatch.

Routes (see Router.SetupChi):

	GET  /                         HTML form with the configured defaults
	POST /                         form submit, renders up to five result cards
	POST /api/v1/recommendations   JSON query, JSON response
	GET  /api/v1/catalog           catalog and engine statistics
	GET  /api/v1/health            liveness and embedding provider status
	GET  /metrics                  Prometheus exposition
	GET  /swagger/*                Swagger UI over the document in api/docs

JSON endpoints share one envelope:

	{"status":"success","data":{...},"metadata":{"request_id":"...","timestamp":"..."}}
	{"status":"error","error":{"code":"VALIDATION_ERROR","message":"...","details":{...}},"metadata":{...}}

Error codes map to status as follows: INVALID_REQUEST (400, undecodable
body), VALIDATION_ERROR (400, query out of range), EMBEDDING_UNAVAILABLE
(503, provider down or circuit open) and INTERNAL_ERROR (500).

Middleware order is request ID, real IP, request logging, panic recovery,
Prometheus metrics, CORS and gzip. Recommendation endpoints and the form
submit are rate limited per client IP with go-chi/httprate; health is not.

Usage:

	handler, err := api.NewHandler(api.HandlerConfig{
	    Engine:    engine,
	    Catalog:   cat,
	    Embedding: pipeline,
	}, logger)
	if err != nil {
	    return err
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(&api.ChiMiddlewareConfig{...}))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
