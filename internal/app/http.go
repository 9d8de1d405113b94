package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/icycoldveins/product-review-aggregator/internal/config"
	"github.com/icycoldveins/product-review-aggregator/internal/handler"
	"github.com/icycoldveins/product-review-aggregator/internal/middleware"
	"github.com/icycoldveins/product-review-aggregator/internal/reddit"
	"github.com/icycoldveins/product-review-aggregator/internal/session"
)

func setupHTTP(_ context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	cookieOpts := session.CookieOptions{
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	var sessionStore session.Store
	if infra.Redis != nil {
		sessionStore = session.NewRedisStore(infra.Redis.Client, cookieOpts)
	} else {
		sessionStore = session.NewCookieStore(cookieOpts)
	}

	authClient := reddit.NewClient(
		cfg.RedditClientID,
		cfg.RedditClientSecret,
		cfg.RedditRedirectURI,
		cfg.RedditUserAgent,
	)
	fetcher := reddit.NewFetcher(cfg.RedditUserAgent)

	h := handler.New(authClient, fetcher, sessionStore)
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	// ----------------------------
	// Public Routes
	// ----------------------------

	h.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.File("./web/index.html")
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireSession(sessionMiddleware))

	api.GET("/reviews", h.Reviews)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if infra.Redis != nil {
			return infra.Redis.Close()
		}
		return nil
	}, nil
}
