// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

// Package metrics provides Prometheus metrics for provider calls and transfers.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded for upstream requests.
const (
	OutcomeOK        = "ok"
	OutcomeAuthError = "auth_error"
	OutcomeError     = "error"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asdc_provider_upstream_requests_total",
			Help: "Total number of upstream API calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "asdc_provider_upstream_request_duration_seconds",
			Help:    "Upstream API call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	transferBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asdc_provider_transfer_bytes_total",
			Help: "Total bytes copied from download streams to destinations",
		},
		[]string{"destination"},
	)
)

// RecordUpstream records one upstream call.
func RecordUpstream(operation, outcome string, d time.Duration) {
	upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	upstreamRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// AddTransferBytes counts bytes written to a destination ("file" or "s3").
func AddTransferBytes(destination string, n int64) {
	if n > 0 {
		transferBytesTotal.WithLabelValues(destination).Add(float64(n))
	}
}

// UpstreamRequests exposes the request counter for tests and dashboards.
func UpstreamRequests() *prometheus.CounterVec {
	return upstreamRequestsTotal
}

func TransferBytes() *prometheus.CounterVec {
	return transferBytesTotal
}
