// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// gallery replica's local API handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidSampleSize is returned when the count query parameter of a
	// random sample is not a positive integer.
	MsgInvalidSampleSize = "count must be a positive integer"

	// MsgInvalidForceFlag is returned when the force query parameter is not
	// a boolean.
	MsgInvalidForceFlag = "force must be a boolean"

	// MsgInvalidImageID is returned when an image id is not of the
	// "photo-<remote id>" form.
	MsgInvalidImageID = "image id must look like photo-<number>"

	// MsgReportFailed is returned when the replica report cannot be built.
	MsgReportFailed = "error building replica report"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"
)
