// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gallery-replica/models"
)

func TestNewSyncOptionsValidator(t *testing.T) {
	v := NewSyncOptionsValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewSyncOptionsValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("SyncOptions value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.SyncOptions{}))
	})

	t.Run("SyncOptions pointer", func(t *testing.T) {
		opts := models.SyncOptions{BatchSize: 5000}
		require.ErrorIs(t, v.Validate(ctx, &opts), ErrInvalidBatchSize)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, models.SyncOptions{}, "clear_local")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

func TestValidate_SyncOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    models.SyncOptions
		fields  []string
		wantErr error
	}{
		{name: "defaults", opts: models.SyncOptions{}},
		{name: "explicit limits", opts: models.SyncOptions{BatchSize: MaxBatchSize, MaxImages: 5000, ClearLocal: true}},
		{name: "page too large", opts: models.SyncOptions{BatchSize: MaxBatchSize + 1}, wantErr: ErrInvalidBatchSize},
		{name: "negative page", opts: models.SyncOptions{BatchSize: -1}, wantErr: ErrInvalidBatchSize},
		{name: "negative cap", opts: models.SyncOptions{MaxImages: -10}, wantErr: ErrInvalidMaxImages},
		{name: "one dataset", opts: models.SyncOptions{DatasetID: 7}},
		{name: "negative dataset", opts: models.SyncOptions{DatasetID: -1}, wantErr: ErrInvalidDatasetID},
		{
			name:   "only the requested field is checked",
			opts:   models.SyncOptions{BatchSize: -1},
			fields: []string{FieldMaxImages},
		},
	}

	v := NewSyncOptionsValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.opts, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
