package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-gallery-replica/internal/app"
	"github.com/MKhiriev/go-gallery-replica/internal/logger"
	"github.com/MKhiriev/go-gallery-replica/internal/utils"
	"github.com/MKhiriev/go-gallery-replica/models"
)

type shouldSyncResponse struct {
	ShouldSync bool `json:"shouldSync"`
}

func (h *Handler) shouldSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var opts models.SyncOptions
	if raw := r.URL.Query().Get("force"); raw != "" {
		force, err := strconv.ParseBool(raw)
		if err != nil {
			log.Err(err).Str("func", "*Handler.shouldSync").Msg("invalid force flag")
			utils.WriteError(w, app.MsgInvalidForceFlag, http.StatusBadRequest)
			return
		}
		opts.ForceSync = force
	}

	utils.WriteJSON(w, shouldSyncResponse{
		ShouldSync: h.services.SyncService.ShouldSync(r.Context(), opts),
	}, http.StatusOK)
}

// syncImages runs one reconciliation with the options in the request body.
// An empty body means default options. The outcome, failed or not, is the
// response body. The run outlives a disconnected client.
func (h *Handler) syncImages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var opts models.SyncOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.syncImages").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	utils.WriteJSON(w, h.services.SyncService.SyncImages(ctx, opts), http.StatusOK)
}

func (h *Handler) forceSync(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())
	utils.WriteJSON(w, h.services.SyncService.ForceSync(ctx), http.StatusOK)
}

// refreshImage re-fetches one replicated image from the catalog.
func (h *Handler) refreshImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	remoteID, ok := models.ParseImageRecordID(id)
	if !ok {
		log.Error().Str("func", "*Handler.refreshImage").Str("id", id).Msg("invalid image id")
		utils.WriteError(w, app.MsgInvalidImageID, http.StatusBadRequest)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	utils.WriteJSON(w, h.services.SyncService.RefreshImage(ctx, remoteID), http.StatusOK)
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.SyncService.GetSyncStatus(r.Context()), http.StatusOK)
}
