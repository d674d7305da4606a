package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/study-board/internal/services"
)

const (
	identityCtxKey = "identity"
	languageCtxKey = "language"
)

func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		h.logger.Warn().Msg("authorization header required")
		h.abort(c, newServiceError(services.ErrUnauthenticated))
		return
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerPrefix) || strings.TrimSpace(parts[1]) == "" {
		h.logger.Warn().Msg("invalid authorization header")
		h.abort(c, newServiceError(services.ErrUnauthenticated))
		return
	}

	identity, err := h.auth.Resolve(c, strings.TrimSpace(parts[1]))
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to resolve assertion")
		h.abort(c, newServiceError(err))
		return
	}

	c.Set(identityCtxKey, identity)
	c.Next()
}

// HandleLanguageMiddleware stores the Accept-Language header for localizing
// error messages. An empty value falls back to the configured default.
func (h *handlerImpl) HandleLanguageMiddleware(c *gin.Context) {
	c.Set(languageCtxKey, c.GetHeader("Accept-Language"))
	c.Next()
}

func (h *handlerImpl) HandleLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path

	c.Next()

	status := c.Writer.Status()
	event := h.logger.Info()
	if status >= http.StatusInternalServerError {
		event = h.logger.Error()
	}
	if len(c.Errors) > 0 {
		event = event.Str("errors", c.Errors.String())
	}
	event.
		Int("status", status).
		Str("method", c.Request.Method).
		Str("path", path).
		Str("ip", c.ClientIP()).
		Str("user_agent", c.Request.UserAgent()).
		Dur("latency", time.Since(start)).
		Msg("http request")
}

func getIdentity(c *gin.Context) (services.Identity, bool) {
	value, exists := c.Get(identityCtxKey)
	if !exists {
		return services.Identity{}, false
	}
	identity, ok := value.(services.Identity)
	return identity, ok && identity.UserID != ""
}

// requireIdentity returns the caller set by HandleAuthMiddleware. It aborts
// the request and returns false if there is none.
func (h *handlerImpl) requireIdentity(c *gin.Context) (services.Identity, bool) {
	identity, ok := getIdentity(c)
	if !ok {
		h.logger.Error().Msg("no identity found in context")
		h.abort(c, newServiceError(services.ErrUnauthenticated))
		return services.Identity{}, false
	}
	return identity, true
}

func getLanguage(c *gin.Context) string {
	lang, _ := c.Get(languageCtxKey)
	str, _ := lang.(string)
	return str
}
