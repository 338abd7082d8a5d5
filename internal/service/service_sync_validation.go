package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gallery-replica/internal/store"
	"github.com/MKhiriev/go-gallery-replica/internal/validators"
	"github.com/MKhiriev/go-gallery-replica/models"
)

// SyncValidationService rejects malformed [models.SyncOptions] before they
// reach the engine. Rejections are reported as failed results, like every
// other sync failure.
type SyncValidationService struct {
	inner     SyncService
	storage   store.ImageStorage
	validator validators.Validator
}

func NewSyncValidationService(storage store.ImageStorage, validator validators.Validator) SyncServiceWrapper {
	return &SyncValidationService{storage: storage, validator: validator}
}

func (v *SyncValidationService) ShouldSync(ctx context.Context, opts models.SyncOptions) bool {
	return v.inner.ShouldSync(ctx, opts)
}

func (v *SyncValidationService) SyncImages(ctx context.Context, opts models.SyncOptions) models.SyncResult {
	if err := v.validator.Validate(ctx, opts); err != nil {
		result := models.SyncResult{Success: false, Error: fmt.Errorf("%w: %w", ErrInvalidSyncOptions, err).Error()}
		if stats, statsErr := v.storage.Stats(ctx); statsErr == nil {
			result.TotalImages = stats.TotalImages
		}
		return result
	}

	return v.inner.SyncImages(ctx, opts)
}

func (v *SyncValidationService) ForceSync(ctx context.Context) models.SyncResult {
	return v.inner.ForceSync(ctx)
}

func (v *SyncValidationService) RefreshImage(ctx context.Context, remoteID int64) models.SyncResult {
	if remoteID <= 0 {
		result := models.SyncResult{Success: false, Error: fmt.Errorf("%w: %d", ErrInvalidImageID, remoteID).Error()}
		if stats, statsErr := v.storage.Stats(ctx); statsErr == nil {
			result.TotalImages = stats.TotalImages
		}
		return result
	}

	return v.inner.RefreshImage(ctx, remoteID)
}

func (v *SyncValidationService) GetSyncStatus(ctx context.Context) models.SyncStatus {
	return v.inner.GetSyncStatus(ctx)
}

func (v *SyncValidationService) Wrap(wrapped SyncService) SyncService {
	v.inner = wrapped
	return v
}
