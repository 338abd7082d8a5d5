package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-gallery-replica/internal/app"
	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/internal/utils"
	"github.com/MKhiriev/go-gallery-replica/models"
)

const (
	defaultSampleSize = 120
	maxSampleSize     = 10000
)

// searchResponse is the display shape of a search result.
type searchResponse struct {
	Results []models.Photo     `json:"results"`
	Stats   models.SearchStats `json:"stats"`
}

func (h *Handler) randomImages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	count := defaultSampleSize
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			log.Error().Str("func", "*Handler.randomImages").Str("count", raw).Msg("invalid sample size")
			utils.WriteError(w, app.MsgInvalidSampleSize, http.StatusBadRequest)
			return
		}
		count = min(n, maxSampleSize)
	}

	records := h.services.ImageService.Sample(r.Context(), count)

	utils.WriteJSON(w, models.ToPhotos(records), http.StatusOK)
}

func (h *Handler) searchImages(w http.ResponseWriter, r *http.Request) {
	result := h.services.ImageService.Search(r.Context(), r.URL.Query().Get("q"))

	utils.WriteJSON(w, searchResponse{
		Results: models.ToPhotos(result.Results),
		Stats:   result.Stats,
	}, http.StatusOK)
}

func (h *Handler) imageByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	record, err := h.services.ImageService.GetByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.imageByID").Str("id", id).Msg("error getting image")

		status := statusFromError(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = app.MsgInternalServerError
		}
		utils.WriteError(w, message, status)
		return
	}

	utils.WriteJSON(w, models.ToPhoto(record), http.StatusOK)
}

func (h *Handler) replicaReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.ImageService.Report(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.replicaReport").Msg("error building replica report")
		utils.WriteError(w, app.MsgReportFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
