// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-gallery-replica/internal/adapter"
	"github.com/MKhiriev/go-gallery-replica/internal/config"
	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/internal/mock"
	"github.com/MKhiriev/go-gallery-replica/internal/store"
	"github.com/MKhiriev/go-gallery-replica/models"
)

// newTestSyncSvc wires a syncService to gomock storage and catalog. Pages
// hold two items unless a test passes a batch size.
func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (*syncService, *mock.MockImageStorage, *mock.MockCatalogAdapter) {
	t.Helper()

	storage := mock.NewMockImageStorage(ctrl)
	catalog := mock.NewMockCatalogAdapter(ctrl)

	cfg := config.Sync{
		Interval:  30 * time.Minute,
		PageSize:  2,
		MaxImages: 100,
		Checksum:  config.ChecksumRolling32,
	}

	svc := NewSyncService(storage, catalog, cfg, logger.Nop()).(*syncService)
	return svc, storage, catalog
}

func remoteImage(id int64, updatedAt string) models.RemoteImage {
	return models.RemoteImage{
		ID:        id,
		DatasetID: 1,
		Filename:  fmt.Sprintf("image-%d.jpg", id),
		MinioURL:  fmt.Sprintf("http://minio/image-%d.jpg", id),
		Format:    "jpg",
		CreatedAt: "2024-05-01T10:00:00",
		UpdatedAt: updatedAt,
	}
}

// localCopy is the record a previous run stored for img.
func localCopy(img models.RemoteImage) models.ImageRecord {
	return ConvertRemoteImage(img, Rolling32Checksum(img))
}

func page(totalPages int, images ...models.RemoteImage) models.RemotePage {
	return models.RemotePage{TotalPages: totalPages, Images: images}
}

func batchIDs(records []models.ImageRecord) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

// expectReachable sets up the reachability check and the remote stats log line.
func expectReachable(catalog *mock.MockCatalogAdapter) {
	catalog.EXPECT().Ping(gomock.Any()).Return(true)
	catalog.EXPECT().GetStats(gomock.Any()).Return(models.RemoteStats{TotalImages: 3, TotalDatasets: 1}, nil)
}

// ── SyncImages ───────────────────────────────────────────────────────────────

func TestSyncService_SyncImages_InitialSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)
	a, b, c := remoteImage(1, "t0"), remoteImage(2, "t0"), remoteImage(3, "t0")

	var saved []models.ImageRecord

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil)
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).Return(page(2, a, b), nil)
	catalog.EXPECT().ListImages(gomock.Any(), 2, 2).Return(page(2, c), nil)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []models.ImageRecord) error {
			saved = records
			return nil
		})
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 3}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{})

	assert.Equal(t, models.SyncResult{Success: true, NewImages: 3, UpdatedImages: 0, TotalImages: 3}, result)
	assert.Equal(t, []string{"photo-1", "photo-2", "photo-3"}, batchIDs(saved))
	assert.Equal(t, Rolling32Checksum(a), saved[0].Checksum)
	assert.False(t, svc.GetSyncStatus(context.Background()).LastSyncTime.IsZero())
}

func TestSyncService_SyncImages_DetectsUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)
	a, b, c := remoteImage(1, "t0"), remoteImage(2, "t0"), remoteImage(3, "t0")
	changed := remoteImage(3, "t1")

	var saved []models.ImageRecord

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{localCopy(a), localCopy(b), localCopy(c)}, nil)
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).Return(page(2, a, b), nil)
	catalog.EXPECT().ListImages(gomock.Any(), 2, 2).Return(page(2, changed), nil)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []models.ImageRecord) error {
			saved = records
			return nil
		})
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 3}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{})

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.NewImages)
	assert.Equal(t, 1, result.UpdatedImages)
	assert.Equal(t, 3, result.TotalImages)
	require.Len(t, saved, 1)
	assert.Equal(t, "photo-3", saved[0].ID)
	assert.Equal(t, Rolling32Checksum(changed), saved[0].Checksum)
}

func TestSyncService_SyncImages_NothingChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)
	a, b := remoteImage(1, "t0"), remoteImage(2, "t0")

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{localCopy(a), localCopy(b)}, nil)
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).Return(page(1, a, b), nil)
	// no Save expectation: an unchanged catalog writes nothing
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 2}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{})

	assert.Equal(t, models.SyncResult{Success: true, TotalImages: 2}, result)
}

func TestSyncService_SyncImages_Unreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)

	catalog.EXPECT().Ping(gomock.Any()).Return(false)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 5}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{ForceSync: true})

	assert.False(t, result.Success)
	assert.Equal(t, 5, result.TotalImages)
	assert.Equal(t, ErrRemoteUnreachable.Error(), result.Error)
	assert.True(t, svc.GetSyncStatus(context.Background()).LastSyncTime.IsZero())
	assert.False(t, svc.GetSyncStatus(context.Background()).IsSyncing)
}

func TestSyncService_SyncImages_PageFailureKeepsCollected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)
	a, b := remoteImage(1, "t0"), remoteImage(2, "t0")

	var saved []models.ImageRecord

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil)
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).Return(page(3, a, b), nil)
	catalog.EXPECT().ListImages(gomock.Any(), 2, 2).Return(models.RemotePage{}, errors.New("HTTP 502"))
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []models.ImageRecord) error {
			saved = records
			return nil
		})
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 2}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{})

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.NewImages)
	assert.Equal(t, []string{"photo-1", "photo-2"}, batchIDs(saved))
}

func TestSyncService_SyncImages_EmptyPageStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil)
	// total_pages is unknown, so only the empty page ends paging
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).Return(page(0, remoteImage(1, "t0")), nil)
	catalog.EXPECT().ListImages(gomock.Any(), 2, 2).Return(page(0), nil)
	storage.EXPECT().Save(gomock.Any(), gomock.Len(1)).Return(nil)
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 1}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{})

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.NewImages)
}

func TestSyncService_SyncImages_MaxImagesCapsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)

	var saved []models.ImageRecord

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil)
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).Return(page(5, remoteImage(1, "t0"), remoteImage(2, "t0")), nil)
	catalog.EXPECT().ListImages(gomock.Any(), 2, 2).Return(page(5, remoteImage(3, "t0"), remoteImage(4, "t0")), nil)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []models.ImageRecord) error {
			saved = records
			return nil
		})
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 3}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{MaxImages: 3})

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.NewImages)
	assert.Equal(t, []string{"photo-1", "photo-2", "photo-3"}, batchIDs(saved))
}

func TestSyncService_SyncImages_BatchSizeOverridesPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil)
	catalog.EXPECT().ListImages(gomock.Any(), 1, 50).Return(page(1), nil)
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{BatchSize: 50})

	assert.True(t, result.Success)
}

func TestSyncService_SyncImages_DuplicateAcrossPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)
	a, b, c := remoteImage(1, "t0"), remoteImage(2, "t0"), remoteImage(3, "t0")

	var saved []models.ImageRecord

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil)
	// the catalog shifted between requests and served b twice
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).Return(page(2, a, b), nil)
	catalog.EXPECT().ListImages(gomock.Any(), 2, 2).Return(page(2, b, c), nil)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []models.ImageRecord) error {
			saved = records
			return nil
		})
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 3}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{})

	assert.Equal(t, 3, result.NewImages)
	assert.Equal(t, []string{"photo-1", "photo-2", "photo-3"}, batchIDs(saved))
}

func TestSyncService_SyncImages_ClearLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)
	a := remoteImage(1, "t0")

	catalog.EXPECT().Ping(gomock.Any()).Return(true)
	catalog.EXPECT().GetStats(gomock.Any()).Return(models.RemoteStats{TotalImages: 1}, nil)
	gomock.InOrder(
		storage.EXPECT().Clear(gomock.Any()).Return(nil),
		storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil),
	)
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).Return(page(1, a), nil)
	storage.EXPECT().Save(gomock.Any(), gomock.Len(1)).Return(nil)
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 1}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{ClearLocal: true})

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.NewImages)
}

func TestSyncService_SyncImages_ClearFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)

	catalog.EXPECT().Ping(gomock.Any()).Return(true)
	storage.EXPECT().Clear(gomock.Any()).Return(errors.New("disk I/O error"))
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 4}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{ClearLocal: true})

	assert.False(t, result.Success)
	assert.Equal(t, 4, result.TotalImages)
	assert.Contains(t, result.Error, "disk I/O error")
}

func TestSyncService_SyncImages_SaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil)
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).Return(page(1, remoteImage(1, "t0")), nil)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("quota exceeded"))
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 0}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, ErrSaveFailed.Error())
	assert.Contains(t, result.Error, "quota exceeded")
	assert.True(t, svc.GetSyncStatus(context.Background()).LastSyncTime.IsZero())
}

func TestSyncService_SyncImages_MarkSyncedFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil)
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).Return(page(1, remoteImage(1, "t0")), nil)
	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 1}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{})

	assert.True(t, result.Success)
	assert.False(t, svc.GetSyncStatus(context.Background()).LastSyncTime.IsZero())
}

func TestSyncService_SyncImages_CancelledWhilePaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil)
	catalog.EXPECT().ListImages(gomock.Any(), 1, 2).DoAndReturn(
		func(context.Context, int, int) (models.RemotePage, error) {
			cancel()
			return models.RemotePage{}, context.Canceled
		})
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{}, nil)

	result := svc.SyncImages(ctx, models.SyncOptions{})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "sync cancelled")
}

func TestSyncService_SyncImages_RejectsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	catalog.EXPECT().Ping(gomock.Any()).DoAndReturn(func(context.Context) bool {
		close(started)
		<-release
		return false
	})
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 7}, nil).Times(2)

	done := make(chan models.SyncResult)
	go func() {
		done <- svc.SyncImages(context.Background(), models.SyncOptions{})
	}()
	<-started

	assert.True(t, svc.GetSyncStatus(context.Background()).IsSyncing)
	assert.False(t, svc.ShouldSync(context.Background(), models.SyncOptions{}))

	second := svc.ForceSync(context.Background())
	assert.False(t, second.Success)
	assert.Equal(t, ErrSyncInProgress.Error(), second.Error)
	assert.Equal(t, 7, second.TotalImages)

	close(release)
	first := <-done

	assert.False(t, first.Success)
	assert.Equal(t, ErrRemoteUnreachable.Error(), first.Error)
	assert.False(t, svc.GetSyncStatus(context.Background()).IsSyncing)
}

func TestSyncService_SyncImages_DatasetScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)
	a, b := remoteImage(1, "t0"), remoteImage(2, "t0")
	a.DatasetID, b.DatasetID = 7, 7

	expectReachable(catalog)
	storage.EXPECT().GetAll(gomock.Any()).Return([]models.ImageRecord{}, nil)
	catalog.EXPECT().ListDatasetImages(gomock.Any(), int64(7), 1, 2).Return(page(1, a, b), nil)
	catalog.EXPECT().ListImages(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	storage.EXPECT().Save(gomock.Any(), gomock.Len(2)).Return(nil)
	storage.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 2}, nil)

	result := svc.SyncImages(context.Background(), models.SyncOptions{DatasetID: 7})

	assert.Equal(t, models.SyncResult{Success: true, NewImages: 2, TotalImages: 2}, result)
}

// ── RefreshImage ─────────────────────────────────────────────────────────────

func TestSyncService_RefreshImage(t *testing.T) {
	current := remoteImage(5, "t1")

	tests := []struct {
		name      string
		stored    models.ImageRecord
		getErr    error
		wantSave  bool
		saveErr   error
		want      models.SyncResult
		wantError error
	}{
		{
			name:     "not yet replicated",
			getErr:   store.ErrImageNotFound,
			wantSave: true,
			want:     models.SyncResult{Success: true, NewImages: 1, TotalImages: 4},
		},
		{
			name:     "changed remotely",
			stored:   localCopy(remoteImage(5, "t0")),
			wantSave: true,
			want:     models.SyncResult{Success: true, UpdatedImages: 1, TotalImages: 4},
		},
		{
			name:   "unchanged",
			stored: localCopy(current),
			want:   models.SyncResult{Success: true, TotalImages: 4},
		},
		{
			name:      "local read fails",
			getErr:    errors.New("database is locked"),
			want:      models.SyncResult{Success: false, TotalImages: 4},
			wantError: errors.New("load local image: database is locked"),
		},
		{
			name:      "save fails",
			getErr:    store.ErrImageNotFound,
			wantSave:  true,
			saveErr:   errors.New("disk full"),
			want:      models.SyncResult{Success: false, TotalImages: 4},
			wantError: ErrSaveFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, storage, catalog := newTestSyncSvc(t, ctrl)

			catalog.EXPECT().GetImage(gomock.Any(), int64(5)).Return(current, nil)

			storage.EXPECT().GetByID(gomock.Any(), "photo-5").Return(tt.stored, tt.getErr)

			if tt.wantSave {
				storage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, records []models.ImageRecord) error {
						require.Len(t, records, 1)
						assert.Equal(t, Rolling32Checksum(current), records[0].Checksum)
						return tt.saveErr
					})
			}
			storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 4}, nil)

			result := svc.RefreshImage(context.Background(), 5)

			if tt.wantError != nil {
				assert.Contains(t, result.Error, tt.wantError.Error())
				result.Error = ""
			}
			assert.Equal(t, tt.want, result)
			assert.True(t, svc.GetSyncStatus(context.Background()).LastSyncTime.IsZero())
			assert.False(t, svc.GetSyncStatus(context.Background()).IsSyncing)
		})
	}
}

func TestSyncService_RefreshImage_RemoteNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, catalog := newTestSyncSvc(t, ctrl)
	catalog.EXPECT().GetImage(gomock.Any(), int64(404)).Return(models.RemoteImage{}, adapter.ErrNotFound)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 4}, nil)

	result := svc.RefreshImage(context.Background(), 404)

	assert.False(t, result.Success)
	assert.Equal(t, 4, result.TotalImages)
	assert.Contains(t, result.Error, adapter.ErrNotFound.Error())
}

func TestSyncService_RefreshImage_RejectedWhileSyncing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, storage, _ := newTestSyncSvc(t, ctrl)
	svc.syncing.Store(true)
	storage.EXPECT().Stats(gomock.Any()).Return(models.ReplicaStats{TotalImages: 4}, nil)

	result := svc.RefreshImage(context.Background(), 5)

	assert.Equal(t, models.SyncResult{Success: false, TotalImages: 4, Error: ErrSyncInProgress.Error()}, result)
}

// ── ShouldSync ───────────────────────────────────────────────────────────────

func TestSyncService_ShouldSync(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		opts      models.SyncOptions
		lastSync  time.Time
		needsSync *bool
		want      bool
	}{
		{
			name: "forced",
			opts: models.SyncOptions{ForceSync: true},
			want: true,
		},
		{
			name:      "store asks for sync",
			needsSync: boolPtr(true),
			lastSync:  now.Add(-time.Minute),
			want:      true,
		},
		{
			name:      "fresh replica and recent run",
			needsSync: boolPtr(false),
			lastSync:  now.Add(-time.Minute),
			want:      false,
		},
		{
			name:      "interval elapsed",
			needsSync: boolPtr(false),
			lastSync:  now.Add(-31 * time.Minute),
			want:      true,
		},
		{
			name:      "no run in this process",
			needsSync: boolPtr(false),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, storage, _ := newTestSyncSvc(t, ctrl)
			svc.now = func() time.Time { return now }
			svc.setLastSyncTime(tt.lastSync)

			if tt.needsSync != nil {
				storage.EXPECT().NeedsSync(gomock.Any()).Return(*tt.needsSync)
			}

			assert.Equal(t, tt.want, svc.ShouldSync(context.Background(), tt.opts))
		})
	}
}

func boolPtr(v bool) *bool { return &v }

// ── settle ───────────────────────────────────────────────────────────────────

func TestSyncService_Settle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSyncSvc(t, ctrl)

	assert.NoError(t, svc.settle(context.Background()))

	svc.clearSettleDelay = time.Millisecond
	assert.NoError(t, svc.settle(context.Background()))

	svc.clearSettleDelay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, svc.settle(ctx), context.Canceled)
}
