package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

func sampleFeed() *domain.AuthorFeed {
	return &domain.AuthorFeed{
		UserProfile: domain.UserProfile{User: domain.User{ID: 2, Username: "author"}, IsSubscribed: true},
		Recipes: []domain.RecipeSummary{
			{ID: 5, Name: "Pie", Image: "recipes/pie.jpg", CookingTime: 40},
		},
		RecipesCount: 4,
	}
}

func TestHandleSubscribe(t *testing.T) {
	t.Run("success with recipes_limit", func(t *testing.T) {
		svc := new(MockSubscriptionService)
		svc.On("Follow", mock.Anything, int64(1), int64(2), mock.MatchedBy(func(limit *int) bool {
			return limit != nil && *limit == 1
		})).Return(sampleFeed(), nil)
		h := NewSubscriptionHandler(svc, staticURLs{})

		req := withUser(withURLParams(httptest.NewRequest(http.MethodPost, "/api/users/2/subscribe?recipes_limit=1", nil), "id", "2"), 1)
		rec := httptest.NewRecorder()
		h.HandleSubscribe(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var feed AuthorFeedResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&feed))
		assert.Equal(t, "author", feed.Username)
		assert.True(t, feed.IsSubscribed)
		assert.Equal(t, 4, feed.RecipesCount)
		require.Len(t, feed.Recipes, 1)
		assert.Equal(t, "http://testserver/media/recipes/pie.jpg", feed.Recipes[0].Image)
	})

	t.Run("self subscription", func(t *testing.T) {
		svc := new(MockSubscriptionService)
		svc.On("Follow", mock.Anything, int64(1), int64(1), (*int)(nil)).Return(nil, domain.ErrSelfSubscription)
		h := NewSubscriptionHandler(svc, staticURLs{})

		req := withUser(withURLParams(httptest.NewRequest(http.MethodPost, "/api/users/1/subscribe", nil), "id", "1"), 1)
		rec := httptest.NewRecorder()
		h.HandleSubscribe(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ErrMsgSelfSubscription)
	})

	t.Run("negative recipes_limit", func(t *testing.T) {
		h := NewSubscriptionHandler(new(MockSubscriptionService), staticURLs{})

		req := withUser(withURLParams(httptest.NewRequest(http.MethodPost, "/api/users/2/subscribe?recipes_limit=-1", nil), "id", "2"), 1)
		rec := httptest.NewRecorder()
		h.HandleSubscribe(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleUnsubscribe(t *testing.T) {
	svc := new(MockSubscriptionService)
	svc.On("Unfollow", mock.Anything, int64(1), int64(2)).Return(domain.ErrNotSubscribed).Once()
	svc.On("Unfollow", mock.Anything, int64(1), int64(3)).Return(nil).Once()
	h := NewSubscriptionHandler(svc, staticURLs{})

	rec := httptest.NewRecorder()
	h.HandleUnsubscribe(rec, withUser(withURLParams(httptest.NewRequest(http.MethodDelete, "/api/users/2/subscribe", nil), "id", "2"), 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.HandleUnsubscribe(rec, withUser(withURLParams(httptest.NewRequest(http.MethodDelete, "/api/users/3/subscribe", nil), "id", "3"), 1))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandleListSubscriptions(t *testing.T) {
	svc := new(MockSubscriptionService)
	svc.On("List", mock.Anything, int64(1), (*int)(nil), domain.Page{Limit: domain.DefaultPageLimit}).
		Return(&domain.AuthorFeedPage{Count: 1, Results: []domain.AuthorFeed{*sampleFeed()}}, nil)
	h := NewSubscriptionHandler(svc, staticURLs{})

	rec := httptest.NewRecorder()
	h.HandleList(rec, withUser(httptest.NewRequest(http.MethodGet, "/api/users/subscriptions", nil), 1))

	require.Equal(t, http.StatusOK, rec.Code)
	var page AuthorFeedPageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, 1, page.Count)
	svc.AssertExpectations(t)
}
