package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	passing := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]HealthCheck
		wantStatus int
		want       HealthResponse
	}{
		{
			name:       "no checks",
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ok", Network: "testnet"},
		},
		{
			name:       "all checks pass",
			checks:     map[string]HealthCheck{"database": passing, "grant_events": passing},
			wantStatus: http.StatusOK,
			want: HealthResponse{
				Status:  "ok",
				Network: "testnet",
				Checks:  map[string]string{"database": "ok", "grant_events": "ok"},
			},
		},
		{
			name:       "failing check degrades",
			checks:     map[string]HealthCheck{"database": failing, "grant_events": passing},
			wantStatus: http.StatusServiceUnavailable,
			want: HealthResponse{
				Status:  "degraded",
				Network: "testnet",
				Checks:  map[string]string{"database": "connection refused", "grant_events": "ok"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler("testnet", tt.checks)

			for _, method := range []string{http.MethodGet, http.MethodHead} {
				w := httptest.NewRecorder()
				c, _ := gin.CreateTestContext(w)
				c.Request = httptest.NewRequest(method, "/health", nil)

				handler.Health(c)

				assert.Equal(t, tt.wantStatus, w.Code)
				var response HealthResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.want, response)
			}
		})
	}
}
