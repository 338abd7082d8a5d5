// Package http implements the local HTTP API of the gallery replica.
//
// It exposes the query engine (random samples, keyword search, lookups and
// the replica report) and the sync trigger surface to the consuming UI.
// Request tracing, access logging and response compression are handled in
// this package before requests are delegated to the service layer.
package http
