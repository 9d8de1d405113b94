package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/icycoldveins/product-review-aggregator/internal/reddit"
	"github.com/icycoldveins/product-review-aggregator/internal/review"
	"github.com/icycoldveins/product-review-aggregator/internal/session"
)

// Authenticator is the slice of the Reddit client the auth endpoints
// need.
type Authenticator interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (reddit.Token, error)
}

// ReviewFetcher searches Reddit and returns normalized reviews.
type ReviewFetcher interface {
	Fetch(ctx context.Context, query, accessToken string) ([]review.Review, error)
}

type Handler struct {
	auth     Authenticator
	fetcher  ReviewFetcher
	sessions session.Store
	nowTime  func() time.Time
}

type Option func(*Handler)

// WithNowTime sets the clock (primarily for testing).
func WithNowTime(now func() time.Time) Option {
	return func(h *Handler) { h.nowTime = now }
}

func New(auth Authenticator, fetcher ReviewFetcher, sessions session.Store, opts ...Option) *Handler {
	h := &Handler{
		auth:     auth,
		fetcher:  fetcher,
		sessions: sessions,
		nowTime:  time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes wires the auth endpoints. The reviews endpoint is
// registered by the app behind the session middleware.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth/reddit")
	auth.GET("", h.StartAuth)
	auth.GET("/callback", h.Callback)
	auth.GET("/status", h.Status)
	auth.POST("/logout", h.Logout)
}
