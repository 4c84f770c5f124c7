// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides the process-wide zerolog logger.
//
// JSON output is the default. Console output is for development.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console", Timestamp: true})
//	logging.Info().Int("movies", n).Msg("Catalog built")
//
// Components take a sub-logger once and keep it:
//
//	logger := logging.WithComponent("catalog")
//
// # Request Correlation
//
// The RequestID middleware stores an ID in the request context and
// logging.Ctx(ctx) returns a logger carrying it as request_id:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Recommendation failed")
//
// # slog Adapter
//
// suture reports supervisor events through log/slog. NewSlogLogger bridges
// those into the same zerolog output:
//
//	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), cfg)
//
// # Environment Variables
//
//	LOG_LEVEL   trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  json or console (default: json)
//	LOG_CALLER  include file:line (default: false)
//
// Always finish an event with .Msg() or .Send(); an unfinished event is
// never written.
package logging
