package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-gallery-replica/internal/mock"
	"github.com/MKhiriev/go-gallery-replica/internal/validators"
	"github.com/MKhiriev/go-gallery-replica/models"
)

// recordingSyncService counts the calls that reach the wrapped engine.
type recordingSyncService struct {
	syncCalls    int
	forceCalls   int
	refreshCalls int
	lastOpts     models.SyncOptions
}

func (r *recordingSyncService) ShouldSync(context.Context, models.SyncOptions) bool { return true }

func (r *recordingSyncService) SyncImages(_ context.Context, opts models.SyncOptions) models.SyncResult {
	r.syncCalls++
	r.lastOpts = opts
	return models.SyncResult{Success: true}
}

func (r *recordingSyncService) ForceSync(context.Context) models.SyncResult {
	r.forceCalls++
	return models.SyncResult{Success: true}
}

func (r *recordingSyncService) RefreshImage(context.Context, int64) models.SyncResult {
	r.refreshCalls++
	return models.SyncResult{Success: true, NewImages: 1}
}

func (r *recordingSyncService) GetSyncStatus(context.Context) models.SyncStatus {
	return models.SyncStatus{IsSyncing: true}
}

func TestSyncValidationService_RejectsBeforeEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockImageStorage(ctrl)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 12}, nil)

	inner := &recordingSyncService{}
	svc := NewSyncValidationService(storage, validators.NewSyncOptionsValidator()).Wrap(inner)

	result := svc.SyncImages(context.Background(), models.SyncOptions{MaxImages: -1})

	assert.False(t, result.Success)
	assert.Equal(t, 12, result.TotalImages)
	assert.Contains(t, result.Error, ErrInvalidSyncOptions.Error())
	assert.Zero(t, inner.syncCalls)
}

func TestSyncValidationService_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := &recordingSyncService{}
	svc := NewSyncValidationService(mock.NewMockImageStorage(ctrl), validators.NewSyncOptionsValidator()).Wrap(inner)
	ctx := context.Background()
	opts := models.SyncOptions{BatchSize: 100, ClearLocal: true}

	assert.True(t, svc.SyncImages(ctx, opts).Success)
	assert.Equal(t, opts, inner.lastOpts)

	assert.True(t, svc.ForceSync(ctx).Success)
	assert.Equal(t, 1, inner.forceCalls)

	assert.True(t, svc.RefreshImage(ctx, 3).Success)
	assert.Equal(t, 1, inner.refreshCalls)

	assert.True(t, svc.ShouldSync(ctx, models.SyncOptions{}))
	assert.True(t, svc.GetSyncStatus(ctx).IsSyncing)
}

func TestSyncValidationService_RejectsInvalidImageID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockImageStorage(ctrl)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 12}, nil).Times(2)

	inner := &recordingSyncService{}
	svc := NewSyncValidationService(storage, validators.NewSyncOptionsValidator()).Wrap(inner)

	for _, id := range []int64{0, -4} {
		result := svc.RefreshImage(context.Background(), id)

		assert.False(t, result.Success)
		assert.Equal(t, 12, result.TotalImages)
		assert.Contains(t, result.Error, ErrInvalidImageID.Error())
	}
	assert.Zero(t, inner.refreshCalls)
}
