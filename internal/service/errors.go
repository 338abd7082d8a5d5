package service

import "errors"

var (
	// ErrSyncInProgress rejects a run while another one is in flight.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrRemoteUnreachable fails a run whose reachability check failed.
	ErrRemoteUnreachable = errors.New("remote catalog is unreachable")

	// ErrSaveFailed fails a run whose batch could not be written.
	ErrSaveFailed = errors.New("failed to save synced images")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidSyncOptions = errors.New("invalid sync options")

	ErrInvalidImageID = errors.New("invalid remote image id")
)
