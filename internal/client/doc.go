// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the gallery replica process runtime.
//
// It wires the startup sync, the background sync schedule and the local
// HTTP API into a single process lifecycle that ends on SIGINT or SIGTERM.
package client
