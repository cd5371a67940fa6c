// Package observability holds the process-wide Prometheus collectors.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests by route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "appforge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	// AuthFailuresTotal counts rejected authentication attempts.
	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "appforge",
			Subsystem: "auth",
			Name:      "failures_total",
			Help:      "Total number of rejected authentication attempts",
		},
	)

	// BansTotal counts IP bans issued by the failure tracker.
	BansTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "appforge",
			Subsystem: "auth",
			Name:      "bans_total",
			Help:      "Total number of IP bans issued",
		},
	)

	// RateLimitedTotal counts rejections per rate policy.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "appforge",
			Subsystem: "ratelimit",
			Name:      "rejections_total",
			Help:      "Total number of rate-limited requests by policy",
		},
		[]string{"policy"},
	)

	// VaultOpenFailuresTotal counts failed decryptions of stored secrets.
	VaultOpenFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "appforge",
			Subsystem: "vault",
			Name:      "open_failures_total",
			Help:      "Total number of failed secret decryptions",
		},
	)
)
