// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/macro-marketplace/internal/store"
	"github.com/MKhiriev/macro-marketplace/models"
)

func TestObserveRemote(t *testing.T) {
	ok := testutil.ToFloat64(RemoteRequests.WithLabelValues("test_op", OutcomeOK))
	failed := testutil.ToFloat64(RemoteRequests.WithLabelValues("test_op", OutcomeError))
	stale := testutil.ToFloat64(RemoteRequests.WithLabelValues("test_op", OutcomeStale))

	ObserveRemote("test_op", nil, false)
	ObserveRemote("test_op", errors.New("boom"), false)
	ObserveRemote("test_op", nil, true)
	ObserveRemote("test_op", errors.New("boom"), true)

	assert.Equal(t, ok+1, testutil.ToFloat64(RemoteRequests.WithLabelValues("test_op", OutcomeOK)))
	assert.Equal(t, failed+1, testutil.ToFloat64(RemoteRequests.WithLabelValues("test_op", OutcomeError)))
	assert.Equal(t, stale+2, testutil.ToFloat64(RemoteRequests.WithLabelValues("test_op", OutcomeStale)))
}

func TestInstrumentCatalog(t *testing.T) {
	cache := store.NewCatalogCache()
	InstrumentCatalog(cache)

	before := testutil.ToFloat64(CacheEmissions)
	unsubscribe := cache.Subscribe(func([]models.MacroRecord) {})
	defer unsubscribe()

	cache.ReplaceAll([]models.MacroRecord{{ID: "1"}, {ID: "2"}})
	cache.Remove("1")

	assert.Equal(t, before+2, testutil.ToFloat64(CacheEmissions))
	assert.Equal(t, float64(1), testutil.ToFloat64(CacheRecords))
	assert.Equal(t, float64(1), testutil.ToFloat64(CacheSubscribers))
}
