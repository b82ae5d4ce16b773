package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Foodgram_Go/internal/auth"
	"github.com/osse101/Foodgram_Go/internal/domain"
)

func TestHandleLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"email":"vasya@example.com","password":"correct-horse"}`,
			setupMock: func(m *MockUserService) {
				m.On("Login", mock.Anything, "vasya@example.com", "correct-horse").Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"auth_token":"jwt-token"}`,
		},
		{
			name: "Wrong password",
			body: `{"email":"vasya@example.com","password":"nope"}`,
			setupMock: func(m *MockUserService) {
				m.On("Login", mock.Anything, "vasya@example.com", "nope").Return("", domain.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"` + ErrMsgInvalidCredentialsError + `"}`,
		},
		{
			name:           "Missing password",
			body:           `{"email":"vasya@example.com"}`,
			setupMock:      func(*MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","fields":{"password":"This field is required"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			tt.setupMock(svc)
			h := NewAuthHandler(svc)

			rec := httptest.NewRecorder()
			h.HandleLogin(rec, httptest.NewRequest(http.MethodPost, "/api/auth/token/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleLogout(t *testing.T) {
	t.Run("revokes current token", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Logout", mock.Anything, mock.MatchedBy(func(c *auth.Claims) bool {
			return c.UserID == 1 && c.TokenID == "test-token"
		})).Return()
		h := NewAuthHandler(svc)

		rec := httptest.NewRecorder()
		h.HandleLogout(rec, withUser(httptest.NewRequest(http.MethodPost, "/api/auth/token/logout", nil), 1))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("anonymous", func(t *testing.T) {
		h := NewAuthHandler(new(MockUserService))

		rec := httptest.NewRecorder()
		h.HandleLogout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/token/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
