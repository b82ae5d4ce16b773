package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   HealthResponse
	}{
		{"database reachable", nil, http.StatusOK, HealthResponse{Status: HealthStatusOK}},
		{"ping fails", errors.New("connection refused"), http.StatusServiceUnavailable,
			HealthResponse{Status: HealthStatusUnavailable, Message: HealthMsgDBFailed}},
		{"ping times out", context.DeadlineExceeded, http.StatusServiceUnavailable,
			HealthResponse{Status: HealthStatusUnavailable, Message: HealthMsgDBFailed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := &MockDBPool{}
			pool.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
				deadline, ok := ctx.Deadline()
				return ok && time.Until(deadline) <= ReadinessTimeout
			})).Return(tt.pingErr)

			w := httptest.NewRecorder()
			HandleReadyz(pool).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var got HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
			pool.AssertExpectations(t)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	prev := Version
	Version = "1.4.2"
	t.Cleanup(func() { Version = prev })

	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.4.2", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestGetVersionInfo_FallsBackToEnv(t *testing.T) {
	prev := Version
	Version = "dev"
	t.Cleanup(func() { Version = prev })
	t.Setenv("VERSION", "2026.10")

	assert.Equal(t, "2026.10", getVersionInfo())
}
