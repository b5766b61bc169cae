// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the client. They are
// registered in the default registry and exposed by the preview server on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/macro-marketplace/internal/store"
)

// Outcome label values of [RemoteRequests].
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomeStale = "stale"
)

var (
	// RemoteRequests counts backend calls by operation and outcome.
	RemoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_remote_requests_total",
			Help: "Backend requests issued by the catalog and session services.",
		},
		[]string{"op", "outcome"},
	)

	// CacheEmissions counts catalog cache mutations.
	CacheEmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_cache_emissions_total",
		Help: "Snapshots emitted by the catalog cache.",
	})

	// CacheRecords is the number of records in the catalog cache.
	CacheRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "marketplace_cache_records",
		Help: "Records currently held by the catalog cache.",
	})

	// CacheSubscribers is the number of views attached to the catalog cache.
	CacheSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "marketplace_cache_subscribers",
		Help: "Subscribers attached to the catalog cache.",
	})

	// DetailCacheHits and DetailCacheMisses track the single-macro LRU.
	DetailCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_detail_cache_hits_total",
		Help: "Lookups by id answered from the detail cache.",
	})
	DetailCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketplace_detail_cache_misses_total",
		Help: "Lookups by id that went to the backend.",
	})
)

// ObserveRemote records one backend call of op. A nil err is a success;
// stale reports whether the response was discarded as superseded.
func ObserveRemote(op string, err error, stale bool) {
	outcome := OutcomeOK
	switch {
	case stale:
		outcome = OutcomeStale
	case err != nil:
		outcome = OutcomeError
	}
	RemoteRequests.WithLabelValues(op, outcome).Inc()
}

// InstrumentCatalog hooks the cache collectors into cache.
func InstrumentCatalog(cache *store.CatalogCache) {
	cache.OnEmit(func(count int) {
		CacheEmissions.Inc()
		CacheRecords.Set(float64(count))
		CacheSubscribers.Set(float64(cache.Subscribers()))
	})
	CacheRecords.Set(float64(cache.Len()))
	CacheSubscribers.Set(float64(cache.Subscribers()))
}
