// Package server runs the local HTTP API of the gallery replica.
//
// It owns the listener lifecycle: serving until the caller's context is
// done, then shutting down gracefully within a bounded time.
package server
