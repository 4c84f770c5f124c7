// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package docs registers the Reelmatch OpenAPI document with swag so that
// /swagger/doc.json and the Swagger UI can serve it. Keep it in step with the
// @-annotations on the handlers in internal/api and cmd/server/docs.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/recommendations": {
            "post": {
                "description": "Embeds the description, takes the 15 most similar catalog movies, applies the rating and year filters and returns at most 5 ranked by the Top/Bottom preference.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Recommend movies for a free-text description",
                "parameters": [
                    {
                        "description": "Query; omitted filters use server defaults",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.RecommendRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Ranked recommendations (possibly empty)",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/recommend.Response"}}}
                            ]
                        }
                    },
                    "400": {"description": "INVALID_REQUEST or VALIDATION_ERROR", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "500": {"description": "INTERNAL_ERROR", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "EMBEDDING_UNAVAILABLE", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/catalog": {
            "get": {
                "description": "Size of the catalog, embedding model and dimension, rows whose rating or year is not numeric, and engine counters.",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Catalog statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.CatalogResponse"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness and provider health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.HealthStatus"}}}
                            ]
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string", "example": "text must not be blank"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {},
                "error": {"$ref": "#/definitions/api.APIError"},
                "metadata": {"$ref": "#/definitions/api.Metadata"}
            }
        },
        "api.Metadata": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"},
                "query_time_ms": {"type": "integer"}
            }
        },
        "api.RecommendRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string", "example": "Sci-fi adventure with space battles"},
                "min_rating": {"type": "number", "example": 7},
                "min_year": {"type": "integer", "example": 2000},
                "preference": {"type": "string", "enum": ["Top", "Bottom"], "example": "Top"}
            }
        },
        "api.CatalogResponse": {
            "type": "object",
            "properties": {
                "catalog": {"$ref": "#/definitions/catalog.Stats"},
                "engine": {"$ref": "#/definitions/recommend.EngineStats"},
                "ranking_convention": {"type": "string", "example": "parity"},
                "candidate_pool": {"type": "integer", "example": 15},
                "result_limit": {"type": "integer", "example": 5}
            }
        },
        "api.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "provider": {"type": "string", "example": "ollama"},
                "provider_reachable": {"type": "boolean"},
                "breaker_state": {"type": "string", "example": "closed"},
                "movies": {"type": "integer", "example": 1000},
                "uptime_seconds": {"type": "number"}
            }
        },
        "catalog.Stats": {
            "type": "object",
            "properties": {
                "movies": {"type": "integer"},
                "malformed_rows": {"type": "integer"},
                "model": {"type": "string"},
                "dimension": {"type": "integer"},
                "built_at": {"type": "string"},
                "build_time": {"type": "string"}
            }
        },
        "recommend.EngineStats": {
            "type": "object",
            "properties": {
                "requests": {"type": "integer"},
                "errors": {"type": "integer"}
            }
        },
        "recommend.Recommendation": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "rating": {"type": "number"},
                "year": {"type": "integer"},
                "genre": {"type": "string"},
                "director": {"type": "string"},
                "actor1": {"type": "string"},
                "actor2": {"type": "string"},
                "poster_url": {"type": "string"},
                "similarity_score": {"type": "number"},
                "overview": {"type": "string"},
                "index": {"type": "integer"}
            }
        },
        "recommend.Response": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/recommend.Recommendation"}},
                "metadata": {"$ref": "#/definitions/recommend.ResponseMetadata"}
            }
        },
        "recommend.ResponseMetadata": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "model": {"type": "string"},
                "preference": {"type": "string"},
                "ranking_convention": {"type": "string"},
                "candidates": {"type": "integer"},
                "dropped": {"type": "integer"},
                "eligible": {"type": "integer"},
                "latency_ms": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Reelmatch API",
	Description:      "Semantic movie recommendations from a free-text description.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
