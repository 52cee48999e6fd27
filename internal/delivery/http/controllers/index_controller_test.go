package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexController_Index(t *testing.T) {
	ctrl := NewIndexController(testLogger, testBaseURL, 0)
	rr := httptest.NewRecorder()

	ctrl.Index(rr, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Links map[string]map[string]string `json:"_links"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, testBaseURL+"/api/events", body.Links["events"]["href"])
}

func TestIndexController_Health(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     []HealthCheck
		wantStatus int
		wantBody   HealthResponse
	}{
		{
			name:       "no checks",
			wantStatus: http.StatusOK,
			wantBody:   HealthResponse{Status: "ok"},
		},
		{
			name:       "all healthy",
			checks:     []HealthCheck{{Name: "database", Check: ok}, {Name: "cache", Check: ok}},
			wantStatus: http.StatusOK,
			wantBody:   HealthResponse{Status: "ok"},
		},
		{
			name:       "cache down",
			checks:     []HealthCheck{{Name: "database", Check: ok}, {Name: "cache", Check: down}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   HealthResponse{Status: "unavailable", Checks: map[string]string{"cache": "connection refused"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewIndexController(testLogger, testBaseURL, 0, tt.checks...)
			rr := httptest.NewRecorder()

			ctrl.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			var body HealthResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
