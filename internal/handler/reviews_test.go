package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/icycoldveins/product-review-aggregator/internal/reddit"
	"github.com/icycoldveins/product-review-aggregator/internal/review"
	"github.com/icycoldveins/product-review-aggregator/internal/session"
)

func TestReviews(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		r, _ := newTestRouter(&stubAuth{}, &stubFetcher{})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/reviews"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Query parameter is required"}`, rec.Body.String())
	})

	t.Run("anonymous request", func(t *testing.T) {
		fetcher := &stubFetcher{}
		r, _ := newTestRouter(&stubAuth{}, fetcher)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews?query=Widget+X", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Reddit authentication required","reason":"no_auth_token"}`, rec.Body.String())
		require.Empty(t, fetcher.gotQuery, "the fetcher must not run without a session")
	})

	t.Run("expired session", func(t *testing.T) {
		fetcher := &stubFetcher{}
		r, _ := newTestRouter(&stubAuth{}, fetcher)

		req := httptest.NewRequest(http.MethodGet, "/api/reviews?query=Widget+X", nil)
		req.AddCookie(&http.Cookie{Name: session.TokenCookieName, Value: "stale-token"})
		req.AddCookie(&http.Cookie{
			Name:  session.ExpiryCookieName,
			Value: testNow.Add(-time.Minute).Format(time.RFC3339),
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Reddit authentication required or expired","reason":"token_expired"}`, rec.Body.String())
		require.Empty(t, fetcher.gotQuery)

		tokenCookie := findCookie(rec, session.TokenCookieName)
		require.NotNil(t, tokenCookie)
		require.Negative(t, tokenCookie.MaxAge)
	})

	t.Run("token rejected mid-search", func(t *testing.T) {
		fetcher := &stubFetcher{err: reddit.ErrAuthExpired}
		r, _ := newTestRouter(&stubAuth{}, fetcher)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/reviews?query=Widget+X"))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Reddit authentication required or expired"}`, rec.Body.String())

		tokenCookie := findCookie(rec, session.TokenCookieName)
		require.NotNil(t, tokenCookie, "rejected token must be cleared")
		require.Negative(t, tokenCookie.MaxAge)
	})

	t.Run("upstream failure", func(t *testing.T) {
		fetcher := &stubFetcher{err: errors.New("connection reset")}
		r, _ := newTestRouter(&stubAuth{}, fetcher)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/reviews?query=Widget+X"))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":"Failed to fetch reviews from Reddit"}`, rec.Body.String())
	})

	t.Run("no reviews found", func(t *testing.T) {
		fetcher := &stubFetcher{}
		r, _ := newTestRouter(&stubAuth{}, fetcher)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/reviews?query=Widget+X"))

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"No reviews found on Reddit for this product"}`, rec.Body.String())
	})

	t.Run("aggregated summary", func(t *testing.T) {
		fetcher := &stubFetcher{reviews: []review.Review{
			{
				ID: "a", Source: "Reddit", Author: "alice", Rating: 5,
				Date: "2023-11-14", Text: "The battery life is great and I love the screen.",
				Sentiment: review.SentimentPositive,
			},
			{
				ID: "b", Source: "Reddit", Author: "bob", Rating: 2,
				Date: "2023-11-15", Text: "Terrible build quality, the hinge broke in a week.",
				Sentiment: review.SentimentNegative,
			},
		}}
		r, _ := newTestRouter(&stubAuth{}, fetcher)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/reviews?query=Widget+X"))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Widget X", fetcher.gotQuery)
		require.Equal(t, "valid-token", fetcher.gotToken, "token must come from the session cookie")

		var summary review.ProductSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))

		require.Equal(t, "Widget X", summary.Name)
		require.Equal(t, 2, summary.ReviewCount)
		require.InDelta(t, 3.5, summary.AverageRating, 0.001)
		require.InDelta(t, 0.5, summary.SentimentScore, 0.001)
		require.NotEmpty(t, summary.Pros)
		require.NotEmpty(t, summary.Cons)
		require.Len(t, summary.Reviews, 2)
		require.Equal(t, "a", summary.Reviews[0].ID)
	})
}
