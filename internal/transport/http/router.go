// Package httptransport wires the public HTTP surface. Handlers live next to
// their domains; this package only assembles them behind the shared
// middleware chain.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	beneficiaryHandler "captura/internal/beneficiary/handler"
	orgunitHandler "captura/internal/orgunit/handler"
	"captura/internal/platform/middleware"
	registrationHandler "captura/internal/registration/handler"
	"captura/pkg/platform/httputil"
)

// Handlers groups the domain handlers the router mounts.
type Handlers struct {
	Beneficiary  *beneficiaryHandler.Handler
	Registration *registrationHandler.Handler
	OrgUnit      *orgunitHandler.Handler
}

// NewRouter assembles all public endpoints.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	r.Get("/api/health", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	h.OrgUnit.Register(r)
	h.Beneficiary.Register(r)
	h.Registration.Register(r)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
