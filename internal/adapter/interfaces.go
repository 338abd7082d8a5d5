// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the remote image catalog.
//
// The primary abstraction is [CatalogAdapter], which decouples the sync
// engine from the catalog's HTTP API. The package ships an HTTP/REST
// implementation ([NewHTTPCatalogAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-gallery-replica/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_adapter_mock.go -package=mock

// CatalogAdapter is read-only access to the remote image catalog.
type CatalogAdapter interface {
	// ListImages returns one page of the catalog listing. Pages start at 1.
	ListImages(ctx context.Context, page, pageSize int) (models.RemotePage, error)

	// ListDatasetImages returns one page of the images of a single dataset.
	ListDatasetImages(ctx context.Context, datasetID int64, page, pageSize int) (models.RemotePage, error)

	// GetImage returns a single catalog item. Unknown ids yield [ErrNotFound].
	GetImage(ctx context.Context, id int64) (models.RemoteImage, error)

	// GetStats returns the catalog totals. When the stats endpoint fails the
	// totals are approximated from a one-item page and
	// [models.RemoteStats.Approximate] is set.
	GetStats(ctx context.Context) (models.RemoteStats, error)

	// Ping reports whether the catalog answers.
	Ping(ctx context.Context) bool
}
