// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package cache provides a generic, thread-safe LRU with optional TTL.

It backs the query embedding cache: repeated form submissions with the same
description skip the embedding provider entirely.

	c := cache.NewLRU[string, embedding.Vector](512, 30*time.Minute)
	c.Add(text, vec)
	if v, ok := c.Get(text); ok {
	    // hit
	}

Expired entries are dropped lazily on Get; CleanupExpired sweeps them
eagerly. Stats reports hits, misses and evictions for the health page.
*/
package cache
