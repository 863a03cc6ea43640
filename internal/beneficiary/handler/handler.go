package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"captura/internal/beneficiary"
	"captura/internal/platform/metrics"
	"captura/internal/platform/middleware"
	"captura/pkg/httperrors"
	"captura/pkg/platform/httputil"
)

// Handler handles beneficiary creation.
type Handler struct {
	logger  *slog.Logger
	store   beneficiary.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(store beneficiary.Store, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		store:   store,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Register mounts the routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/beneficiarios", h.handleCreate)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req beneficiary.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create beneficiario body",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, httperrors.New(httperrors.CodeBadRequest, "Cuerpo de la petición inválido."))
		return
	}
	sanitize(&req)

	if err := req.Validate(); err != nil {
		h.metrics.CreateRejected.WithLabelValues("beneficiarios", beneficiary.RejectReason(err)).Inc()
		h.logger.WarnContext(ctx, "beneficiario rejected by validation",
			"request_id", requestID,
			"reason", beneficiary.RejectReason(err),
		)
		httputil.WriteError(w, err)
		return
	}

	record := req.Record(uuid.NewString(), h.now())
	if err := h.store.Create(ctx, record); err != nil {
		h.logger.ErrorContext(ctx, "failed to store beneficiario",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, httperrors.New(httperrors.CodeInternal, "No se pudo guardar el beneficiario."))
		return
	}

	h.metrics.BeneficiariesCreated.Inc()
	httputil.WriteJSON(w, http.StatusCreated, record)
}
