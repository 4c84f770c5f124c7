// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services adapts Reelmatch components to suture.Service.

  - HTTPServerService turns ListenAndServe/Shutdown into Serve(ctx),
    draining connections within a shutdown timeout.
  - ProviderMonitorService pings the embedding provider on an interval and
    publishes the reelmatch_embedding_provider_up gauge.

Serve returns ctx.Err() on shutdown and a wrapped error on failure, which
the supervisor treats as a crash and restarts.
*/
package services
