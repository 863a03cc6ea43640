package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	BeneficiariesCreated prometheus.Counter
	RegistrationsCreated prometheus.Counter
	CreateRejected       *prometheus.CounterVec
	OrgUnitListRequests  prometheus.Counter
}

// New creates and registers all metrics on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on reg. Tests pass a fresh registry so
// repeated construction does not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BeneficiariesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "captura_beneficiaries_created_total",
			Help: "Total number of beneficiary records persisted",
		}),
		RegistrationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "captura_registrations_created_total",
			Help: "Total number of registration records persisted",
		}),
		CreateRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "captura_create_rejected_total",
			Help: "Create requests rejected by server-side validation",
		}, []string{"endpoint", "reason"}),
		OrgUnitListRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "captura_orgunit_list_requests_total",
			Help: "Requests served for the organizational unit listing",
		}),
	}
}
