package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

func TestCollectionHandler(t *testing.T) {
	summary := &domain.RecipeSummary{ID: 12, Name: "Borscht", Image: "recipes/b.jpg", CookingTime: 90}

	tests := []struct {
		name           string
		kind           domain.CollectionKind
		method         string
		setupMock      func(*MockCollectionService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "add favorite",
			kind:   domain.CollectionFavorites,
			method: http.MethodPost,
			setupMock: func(m *MockCollectionService) {
				m.On("Add", mock.Anything, int64(1), int64(12)).Return(summary, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"image":"http://testserver/media/recipes/b.jpg"`,
		},
		{
			name:   "duplicate favorite",
			kind:   domain.CollectionFavorites,
			method: http.MethodPost,
			setupMock: func(m *MockCollectionService) {
				m.On("Add", mock.Anything, int64(1), int64(12)).Return(nil, domain.ErrAlreadyInFavorites)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgAlreadyInFavorites,
		},
		{
			name:   "add missing recipe to cart",
			kind:   domain.CollectionShoppingCart,
			method: http.MethodPost,
			setupMock: func(m *MockCollectionService) {
				m.On("Add", mock.Anything, int64(1), int64(12)).Return(nil, domain.ErrRecipeNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "remove from cart",
			kind:   domain.CollectionShoppingCart,
			method: http.MethodDelete,
			setupMock: func(m *MockCollectionService) {
				m.On("Remove", mock.Anything, int64(1), int64(12)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "remove absent recipe",
			kind:   domain.CollectionShoppingCart,
			method: http.MethodDelete,
			setupMock: func(m *MockCollectionService) {
				m.On("Remove", mock.Anything, int64(1), int64(12)).Return(domain.ErrNotInShoppingCart)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgNotInShoppingCart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCollectionService{kind: tt.kind}
			tt.setupMock(svc)
			h := NewCollectionHandler(svc, staticURLs{})

			req := withUser(withURLParams(httptest.NewRequest(tt.method, "/api/recipes/12/x", nil), "id", "12"), 1)
			rec := httptest.NewRecorder()
			if tt.method == http.MethodPost {
				h.HandleAdd(rec, req)
			} else {
				h.HandleRemove(rec, req)
			}

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
