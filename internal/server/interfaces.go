// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the transport server.
type Server interface {
	// RunServer serves requests until a stop signal arrives.
	RunServer()

	// Run serves requests until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown stops the server and waits for in-flight requests.
	Shutdown()
}
