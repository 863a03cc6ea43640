package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"captura/internal/platform/metrics"
	"captura/internal/platform/middleware"
	"captura/internal/registration"
	"captura/pkg/httperrors"
	"captura/pkg/platform/httputil"
)

// Handler handles registration creation.
type Handler struct {
	logger  *slog.Logger
	store   registration.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(store registration.Store, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		store:   store,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Register mounts the routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/registrations", h.handleCreate)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req registration.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create registration body",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, httperrors.New(httperrors.CodeBadRequest, "Cuerpo de la petición inválido."))
		return
	}
	sanitize(&req)

	if err := req.Validate(); err != nil {
		h.metrics.CreateRejected.WithLabelValues("registrations", registration.RejectReason(err)).Inc()
		h.logger.WarnContext(ctx, "registration rejected by validation",
			"request_id", requestID,
			"reason", registration.RejectReason(err),
		)
		httputil.WriteError(w, err)
		return
	}

	record := req.Record(uuid.NewString(), h.now())
	if err := h.store.Create(ctx, record); err != nil {
		h.logger.ErrorContext(ctx, "failed to store registration",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, httperrors.New(httperrors.CodeInternal, "No se pudo guardar el registro."))
		return
	}

	h.metrics.RegistrationsCreated.Inc()
	httputil.WriteJSON(w, http.StatusCreated, record)
}

// sanitize trims whitespace from all string fields in a struct.
func sanitize(v any) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if field.CanSet() && field.Kind() == reflect.String {
			field.SetString(strings.TrimSpace(field.String()))
		}
	}
}
