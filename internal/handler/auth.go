package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/icycoldveins/product-review-aggregator/internal/utils"
)

// StartAuth issues a fresh CSRF state, stores it for the callback, and
// returns the Reddit authorization URL for the client to follow.
func (h *Handler) StartAuth(c *gin.Context) {
	state := utils.RandomString(16)

	if err := h.sessions.SaveState(c.Request.Context(), c.Writer, state); err != nil {
		log.Error().Err(err).Msg("failed to store auth state")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate Reddit authentication URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": h.auth.AuthCodeURL(state)})
}

// Callback finishes the OAuth flow. Every failure path collapses back
// to an anonymous session: cookies cleared, redirect home with a
// tagged error so the UI can explain what happened.
func (h *Handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	fail := func(tag string) {
		if err := h.sessions.Clear(ctx, c.Writer, c.Request); err != nil {
			log.Warn().Err(err).Msg("failed to clear session during callback error")
		}
		c.Redirect(http.StatusFound, "/?error="+tag)
	}

	if errParam := c.Query("error"); errParam != "" {
		log.Warn().Str("error", errParam).Msg("reddit returned an auth error")
		fail("reddit_" + errParam)
		return
	}

	state := c.Query("state")
	stored, err := h.sessions.LoadState(ctx, c.Request)
	if err != nil || state == "" || stored == "" || state != stored {
		log.Warn().Str("received", state).Msg("auth state validation failed")
		fail("invalid_state")
		return
	}

	code := c.Query("code")
	if code == "" {
		log.Warn().Msg("callback carried neither code nor error")
		fail("no_code")
		return
	}

	tok, err := h.auth.ExchangeCode(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("token exchange failed")
		fail("auth_failed")
		return
	}

	if err := h.sessions.SaveToken(ctx, c.Writer, c.Request, tok.AccessToken, tok.ExpiresAt); err != nil {
		log.Error().Err(err).Msg("failed to store session token")
		fail("auth_failed")
		return
	}

	c.Redirect(http.StatusFound, "/?auth=success")
}

// Status reports whether the caller holds a live session. An expired
// session is cleared in the same response.
func (h *Handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.sessions.Load(ctx, c.Request)
	if err != nil {
		log.Error().Err(err).Msg("failed to load session")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":         "Failed to check authentication status",
			"authenticated": false,
			"reason":        "server_error",
		})
		return
	}

	if sess == nil || sess.AccessToken == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false, "reason": "no_auth_token"})
		return
	}

	if sess.Expired(h.nowTime()) {
		if err := h.sessions.Clear(ctx, c.Writer, c.Request); err != nil {
			log.Warn().Err(err).Msg("failed to clear expired session")
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": false, "reason": "token_expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"expiresAt":     sess.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout clears the session cookies. Idempotent.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context(), c.Writer, c.Request); err != nil {
		log.Error().Err(err).Msg("failed to clear session on logout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
