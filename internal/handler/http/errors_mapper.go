package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gallery-replica/internal/service"
	"github.com/MKhiriev/go-gallery-replica/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidSyncOptions: http.StatusBadRequest,
	service.ErrSyncInProgress:     http.StatusConflict,
	service.ErrRemoteUnreachable:  http.StatusBadGateway,

	store.ErrImageNotFound:        http.StatusNotFound,
	store.ErrStorageQuotaExceeded: http.StatusInsufficientStorage,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
