package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-gallery-replica/internal/config"
	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/internal/utils"
	"github.com/MKhiriev/go-gallery-replica/models"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs an HTTP/REST implementation of
// [CatalogAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCatalogAdapter(cfg config.Adapter, logger *logger.Logger) (CatalogAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpCatalogAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListImages implements [CatalogAdapter] with
// GET /dataset-images?page=&page_size=.
func (h *httpCatalogAdapter) ListImages(ctx context.Context, page, pageSize int) (models.RemotePage, error) {
	var result models.RemotePage

	resp, err := h.pagedRequest(ctx, page, pageSize).
		SetResult(&result).
		Get("/dataset-images")
	if err != nil {
		return models.RemotePage{}, fmt.Errorf("list images request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemotePage{}, err
	}

	return result, nil
}

// ListDatasetImages implements [CatalogAdapter] with
// GET /datasets/{id}/images?page=&page_size=.
func (h *httpCatalogAdapter) ListDatasetImages(ctx context.Context, datasetID int64, page, pageSize int) (models.RemotePage, error) {
	var result models.RemotePage

	resp, err := h.pagedRequest(ctx, page, pageSize).
		SetPathParam("datasetID", strconv.FormatInt(datasetID, 10)).
		SetResult(&result).
		Get("/datasets/{datasetID}/images")
	if err != nil {
		return models.RemotePage{}, fmt.Errorf("list dataset images request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemotePage{}, err
	}

	return result, nil
}

// GetImage implements [CatalogAdapter] with GET /dataset-images/{id}.
func (h *httpCatalogAdapter) GetImage(ctx context.Context, id int64) (models.RemoteImage, error) {
	var result models.RemoteImage

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("imageID", strconv.FormatInt(id, 10)).
		SetResult(&result).
		Get("/dataset-images/{imageID}")
	if err != nil {
		return models.RemoteImage{}, fmt.Errorf("get image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteImage{}, err
	}

	return result, nil
}

// GetStats implements [CatalogAdapter]. It tries GET /dataset-images/stats
// first and falls back to the total of a one-item listing page.
func (h *httpCatalogAdapter) GetStats(ctx context.Context) (models.RemoteStats, error) {
	log := logger.FromContext(ctx)

	stats, err := h.getStats(ctx)
	if err == nil {
		return stats, nil
	}

	log.Warn().Err(err).
		Str("func", "httpCatalogAdapter.GetStats").
		Msg("stats endpoint unavailable, approximating from image listing")

	page, listErr := h.ListImages(ctx, 1, 1)
	if listErr != nil {
		return models.RemoteStats{}, fmt.Errorf("approximate stats: %w", listErr)
	}

	return models.RemoteStats{
		TotalImages:         page.Total,
		TotalDatasets:       1,
		AvgImagesPerDataset: float64(page.Total),
		Approximate:         true,
	}, nil
}

func (h *httpCatalogAdapter) getStats(ctx context.Context) (models.RemoteStats, error) {
	var result models.RemoteStats

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/dataset-images/stats")
	if err != nil {
		return models.RemoteStats{}, fmt.Errorf("get stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteStats{}, err
	}

	return result, nil
}

// Ping implements [CatalogAdapter]. The catalog is reachable when its
// stats, real or approximated, can be read.
func (h *httpCatalogAdapter) Ping(ctx context.Context) bool {
	if _, err := h.GetStats(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "httpCatalogAdapter.Ping").
			Msg("catalog is unreachable")
		return false
	}
	return true
}

func (h *httpCatalogAdapter) pagedRequest(ctx context.Context, page, pageSize int) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("page_size", strconv.Itoa(pageSize))
}
