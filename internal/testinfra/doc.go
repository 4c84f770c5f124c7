// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package testinfra starts real services in Docker for integration tests.
//
// Files here build only with -tags integration:
//
//	go test -tags integration ./internal/embedding/...
//
// NewOllamaContainer runs ollama/ollama and pulls all-minilm so the
// embedding clients can be exercised against the real API:
//
//	func TestOllama(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    ollama, err := testinfra.NewOllamaContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, ollama)
//	    // point embedding.Config.BaseURL at ollama.URL
//	}
//
// Tests skip when Docker is unavailable. The first run downloads the image
// and model.
package testinfra
