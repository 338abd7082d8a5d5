// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-gallery-replica/internal/workers"
)

// Client defines the minimal lifecycle contract for runnable applications.
type Client interface {
	// Run starts the application and blocks until ctx is done, a shutdown
	// signal arrives or a component fails.
	Run(ctx context.Context) error
}

// Scheduler runs registered background workers.
type Scheduler interface {
	Add(spec string, worker workers.Worker) error
	Run(ctx context.Context) error
}
