package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/icycoldveins/product-review-aggregator/internal/middleware"
	"github.com/icycoldveins/product-review-aggregator/internal/reddit"
	"github.com/icycoldveins/product-review-aggregator/internal/review"
	"github.com/icycoldveins/product-review-aggregator/internal/sentiment"
)

// Reviews is the aggregation endpoint: fetch reviews for the query,
// score them, and return one ProductSummary. Orchestration only; all
// the heuristics live in the reddit and sentiment packages.
func (h *Handler) Reviews(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	ctx := c.Request.Context()

	accessToken, ok := middleware.AccessTokenFromContext(ctx)
	if !ok || accessToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Reddit authentication required"})
		return
	}

	reviews, err := h.fetcher.Fetch(ctx, query, accessToken)
	if err != nil {
		switch {
		case errors.Is(err, reddit.ErrAuthExpired), errors.Is(err, reddit.ErrAuthRequired):
			// Clear the stale session so the client can restart the
			// auth flow instead of looping on a dead token.
			if clearErr := h.sessions.Clear(ctx, c.Writer, c.Request); clearErr != nil {
				log.Warn().Err(clearErr).Msg("failed to clear expired session")
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Reddit authentication required or expired"})
		default:
			log.Error().Err(err).Str("query", query).Msg("review fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews from Reddit"})
		}
		return
	}

	if len(reviews) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No reviews found on Reddit for this product"})
		return
	}

	texts := make([]string, len(reviews))
	for i, r := range reviews {
		texts[i] = r.Text
	}
	pros, cons := sentiment.ExtractProsAndCons(texts)

	c.JSON(http.StatusOK, review.ProductSummary{
		Name:           query,
		AverageRating:  review.AverageRating(reviews),
		ReviewCount:    len(reviews),
		SentimentScore: sentiment.Overall(reviews),
		Pros:           pros,
		Cons:           cons,
		Reviews:        reviews,
	})
}
