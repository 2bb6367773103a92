// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmatch/reelmatch

/*
Package supervisor runs the long-lived parts of the server under a suture
supervisor tree.

The tree has two layers:

	reelmatch (root)
	├── engine-layer: builds the similarity engine from the datasets
	└── api-layer:    HTTP server

Layers fail independently: the HTTP server keeps answering liveness probes
while the engine is still building, and readiness flips to 200 once the
build completes. Supervisor events are logged through sutureslog, bridged to
zerolog by logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddEngineService(services.NewEngineService(engine, moviesPath, creditsPath))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
