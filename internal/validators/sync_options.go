package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-gallery-replica/models"
)

const (
	FieldBatchSize = "batch_size"
	FieldMaxImages = "max_images"
	FieldDatasetID = "dataset_id"
)

// MaxBatchSize is the largest page the catalog accepts.
const MaxBatchSize = 1000

type SyncOptionsValidator struct {
}

func NewSyncOptionsValidator() Validator {
	return &SyncOptionsValidator{}
}

func (v *SyncOptionsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncOptions:
		return v.validateSyncOptions(ctx, value, fields...)
	case *models.SyncOptions:
		return v.validateSyncOptions(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// Zero values of BatchSize and MaxImages select the engine defaults, and a
// zero DatasetID syncs the whole catalog.
func (v *SyncOptionsValidator) validateSyncOptions(ctx context.Context, opts models.SyncOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBatchSize, FieldMaxImages, FieldDatasetID}
	}

	for _, f := range fields {
		switch f {
		case FieldBatchSize:
			if err := validation.ValidateWithContext(ctx, opts.BatchSize, validation.Min(0), validation.Max(MaxBatchSize)); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidBatchSize, err)
			}
		case FieldMaxImages:
			if err := validation.ValidateWithContext(ctx, opts.MaxImages, validation.Min(0)); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidMaxImages, err)
			}
		case FieldDatasetID:
			if err := validation.ValidateWithContext(ctx, opts.DatasetID, validation.Min(int64(0))); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidDatasetID, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
