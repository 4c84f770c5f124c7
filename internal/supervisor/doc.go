// Reelmatch - Semantic Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor runs Reelmatch's long-lived services under a suture v4 tree.

# Layout

	RootSupervisor ("reelmatch")
	├── MonitorSupervisor ("monitor-layer")
	│   └── ProviderMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A provider monitor that keeps failing backs off inside its own layer and
never restarts the HTTP server.

# Restart Policy

TreeConfig sets the suture failure counter:

	config := supervisor.TreeConfig{
	    FailureThreshold: 5,
	    FailureDecay:     30,
	    FailureBackoff:   15 * time.Second,
	    ShutdownTimeout:  10 * time.Second,
	}

Failures decay exponentially over FailureDecay seconds. Once the counter
passes FailureThreshold, restarts wait FailureBackoff.

# Usage

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second, logger))
	tree.AddMonitorService(services.NewProviderMonitorService(pipeline, services.ProviderMonitorConfig{}, logger))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

Suture events are logged through the sutureslog hook, which writes into
zerolog via logging.NewSlogLogger.

The catalog and engine are not supervised. They are built once at startup,
and a failure there is fatal.
*/
package supervisor
