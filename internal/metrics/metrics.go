package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Gateway-level Prometheus metrics. Defined in a standalone package to avoid
// import cycles between the guard middleware and the upstream client.

var (
	LoginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_login_attempts_total",
		Help: "Login attempts by outcome (success, denied, error)",
	}, []string{"outcome"})

	GuardRedirects = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_guard_redirects_total",
		Help: "Navigations redirected by the auth or permission gate",
	}, []string{"gate"})

	SessionClears = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portal_session_clears_total",
		Help: "Sessions cleared after an upstream 401",
	})

	UpstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_upstream_requests_total",
		Help: "Requests issued to the upstream API by method and status class",
	}, []string{"method", "status"})

	UpstreamLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "portal_upstream_latency_ms",
		Help:    "Upstream request latency in milliseconds",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)

// Register registers the gateway metrics on the given registry (or the
// default if nil). Already-registered collectors are tolerated so tests can
// call this repeatedly.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	collectors := []prometheus.Collector{
		LoginAttempts,
		GuardRedirects,
		SessionClears,
		UpstreamRequests,
		UpstreamLatency,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
