// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsInstrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	ok := m.Instrument("GET /workflow", WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	conflict := m.Instrument("POST /votes", func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, http.StatusConflict, "already_voted", "you have already voted")
	})

	for range 3 {
		ok(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/workflow", nil))
	}
	w := httptest.NewRecorder()
	conflict(w, httptest.NewRequest(http.MethodPost, "/votes", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "quickly_vote_http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			counts[labels["route"]+" "+labels["code"]] = metric.GetCounter().GetValue()
		}
	}

	assert.Equal(t, map[string]float64{
		"GET /workflow 200": 3,
		"POST /votes 409":   1,
	}, counts)
}
