package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealth_ReturnsOK(t *testing.T) {
	f := newFixture(t, sample("a", testNow), sample("b", testNow))

	rr := do(f.health.Health, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := decode[map[string]interface{}](t, rr)
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, float64(2), resp["events"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	f := newFixture(t)

	rr := do(f.health.Health, http.MethodPost, "/health", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHealth_EventCountFollowsStore(t *testing.T) {
	f := newFixture(t)
	f.store.Add(sample("a", testNow))

	rr := do(f.health.Health, http.MethodGet, "/health", "")

	assert.Equal(t, float64(1), decode[map[string]interface{}](t, rr)["events"])
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0h0m0s"},
		{"one minute", 60 * time.Second, "0h1m0s"},
		{"one hour", time.Hour, "1h0m0s"},
		{"mixed", time.Hour + time.Minute + time.Second, "1h1m1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
