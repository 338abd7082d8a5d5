// Package config provides configuration loading, merging, and validation
// for the gallery replica.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (optionally preloaded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// Fields no source sets fall back to [Defaults]. The entry point is
// [GetStructuredConfig].
package config
