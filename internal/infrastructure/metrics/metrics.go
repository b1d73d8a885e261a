package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taller_dashboards/internal/usecase/interfaces"
)

// Registry owns the service's prometheus collectors. It implements
// interfaces.IFetchObserver so the usecase layer never imports prometheus.
type Registry struct {
	reg *prometheus.Registry

	FetchAttempts  *prometheus.CounterVec
	FetchRetries   *prometheus.CounterVec
	FetchDegrades  *prometheus.CounterVec
	DashboardBuild *prometheus.HistogramVec
}

var _ interfaces.IFetchObserver = (*Registry)(nil)

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fetch_attempts_total",
		Help: "Upstream collection fetches attempted, per resource.",
	}, []string{"resource"})
	retries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fetch_retries_total",
		Help: "Fetches retried after a forbidden response, per resource.",
	}, []string{"resource"})
	degrades := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fetch_degraded_total",
		Help: "Fetches that degraded to an empty collection, per resource.",
	}, []string{"resource"})
	build := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_build_seconds",
		Help:    "Time spent assembling a dashboard, per role.",
		Buckets: prometheus.DefBuckets,
	}, []string{"role"})

	r.MustRegister(attempts, retries, degrades, build)
	return &Registry{
		reg:            r,
		FetchAttempts:  attempts,
		FetchRetries:   retries,
		FetchDegrades:  degrades,
		DashboardBuild: build,
	}
}

func (r *Registry) FetchAttempt(resource string)  { r.FetchAttempts.WithLabelValues(resource).Inc() }
func (r *Registry) FetchRetry(resource string)    { r.FetchRetries.WithLabelValues(resource).Inc() }
func (r *Registry) FetchDegraded(resource string) { r.FetchDegrades.WithLabelValues(resource).Inc() }

func (r *Registry) DashboardBuilt(role string, seconds float64) {
	r.DashboardBuild.WithLabelValues(role).Observe(seconds)
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
