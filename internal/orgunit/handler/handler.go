package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"captura/internal/orgunit"
	"captura/internal/platform/metrics"
	"captura/internal/platform/middleware"
	"captura/pkg/httperrors"
	"captura/pkg/platform/httputil"
)

// Handler serves the organizational unit listing.
type Handler struct {
	logger  *slog.Logger
	store   orgunit.Store
	metrics *metrics.Metrics
}

func New(store orgunit.Store, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{logger: logger, store: store, metrics: metrics}
}

// Register mounts the routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/sm", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.metrics.OrgUnitListRequests.Inc()

	docs, err := h.store.ListDocuments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list org units",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, httperrors.New(httperrors.CodeInternal, "No se pudo cargar el listado de SM."))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, orgunit.ResolveAll(docs))
}
