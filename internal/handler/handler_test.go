package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/icycoldveins/product-review-aggregator/internal/handler"
	"github.com/icycoldveins/product-review-aggregator/internal/middleware"
	"github.com/icycoldveins/product-review-aggregator/internal/reddit"
	"github.com/icycoldveins/product-review-aggregator/internal/review"
	"github.com/icycoldveins/product-review-aggregator/internal/session"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type stubAuth struct {
	token    reddit.Token
	err      error
	gotState string
	gotCode  string
}

func (s *stubAuth) AuthCodeURL(state string) string {
	s.gotState = state
	return "https://www.reddit.com/api/v1/authorize?state=" + state
}

func (s *stubAuth) ExchangeCode(_ context.Context, code string) (reddit.Token, error) {
	s.gotCode = code
	return s.token, s.err
}

type stubFetcher struct {
	reviews  []review.Review
	err      error
	gotQuery string
	gotToken string
}

func (s *stubFetcher) Fetch(_ context.Context, query, accessToken string) ([]review.Review, error) {
	s.gotQuery = query
	s.gotToken = accessToken
	return s.reviews, s.err
}

// newTestRouter builds the same route layout as the app wiring, with
// a fixed clock and stubbed Reddit dependencies.
func newTestRouter(auth handler.Authenticator, fetcher handler.ReviewFetcher) (*gin.Engine, session.Store) {
	gin.SetMode(gin.TestMode)

	store := session.NewCookieStore(session.CookieOptions{})
	now := func() time.Time { return testNow }

	h := handler.New(auth, fetcher, store, handler.WithNowTime(now))

	r := gin.New()
	h.RegisterRoutes(r)

	sessionMiddleware := middleware.NewSessionMiddleware(store, middleware.WithNowTime(now))
	api := r.Group("/api")
	api.Use(middleware.GinRequireSession(sessionMiddleware))
	api.GET("/reviews", h.Reviews)

	return r, store
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.AddCookie(&http.Cookie{Name: session.TokenCookieName, Value: "valid-token"})
	req.AddCookie(&http.Cookie{
		Name:  session.ExpiryCookieName,
		Value: testNow.Add(30 * time.Minute).Format(time.RFC3339),
	})
	return req
}
