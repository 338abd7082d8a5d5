package service

import (
	"github.com/MKhiriev/go-gallery-replica/internal/adapter"
	"github.com/MKhiriev/go-gallery-replica/internal/config"
	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/internal/store"
	"github.com/MKhiriev/go-gallery-replica/internal/validators"
	"github.com/MKhiriev/go-gallery-replica/models"
)

type Services struct {
	SyncService    SyncService
	ImageService   ImageService
	AppInfoService AppInfoService
	SyncJob        *SyncJob
}

func NewServices(storages *store.Storages, catalog adapter.CatalogAdapter, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	syncSvc := NewSyncValidationService(storages.ImageStorage, validators.NewSyncOptionsValidator()).
		Wrap(NewSyncService(storages.ImageStorage, catalog, cfg.Sync, logger))

	return &Services{
		SyncService:    syncSvc,
		ImageService:   NewImageService(storages.ImageStorage, logger),
		AppInfoService: appInfo,
		SyncJob:        NewSyncJob(syncSvc, logger),
	}, nil
}
