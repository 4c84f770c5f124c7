// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

// General API information for swag. The generated spec lives in
// internal/api/docs and is served at /swagger/.
//
// @title Reelmatch API
// @version 1.0
// @description Semantic movie recommendations: describe what you want to watch
// @description and get up to five movies ranked by IMDB rating.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {"code": "VALIDATION_ERROR", "message": "text must not be blank"},
// @description   "metadata": {"request_id": "...", "timestamp": "2026-01-02T15:04:05Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelmatch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Semantic search over the movie catalog
//
// @tag.name Core
// @tag.description Health and catalog status
