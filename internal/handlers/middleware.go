package handlers

import (
	"errors"
	"net/http"
	"time"

	"resource_api/internal/models"
	"resource_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	identityKey     = "identity"
	requestIDKey    = "requestId"
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 128
)

// basicAuthMiddleware is the guard in front of every /resources route. Any failure
// aborts with the same 401 so clients cannot tell which check failed.
func (h *Handler) basicAuthMiddleware(c *gin.Context) {
	creds, err := service.ExtractCredentials(c.GetHeader("Authorization"))
	if err != nil {
		h.log.Infow("auth_rejected", "reason", err, "request_id", requestIDFrom(c))
		h.abortUnauthorized(c)
		return
	}

	identity, err := h.services.Authenticate(c.Request.Context(), creds)
	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			h.log.Infow("auth_rejected", "reason", err, "username", creds.Username, "request_id", requestIDFrom(c))
			h.abortUnauthorized(c)
			return
		}
		h.log.Errorw("auth_lookup_failed", "err", err, "request_id", requestIDFrom(c))
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody(codeInternal, msgInternal))
		return
	}

	// store in Gin context
	c.Set(identityKey, identity)
	c.Next()
}

// identityFrom returns the authenticated identity, or the zero value outside the guard.
func identityFrom(c *gin.Context) models.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(models.Identity); ok {
			return id
		}
	}
	return models.Identity{}
}

// requestIDMiddleware reuses a sane incoming X-Request-ID or generates one.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" || len(id) > maxRequestIDLen {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func requestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// accessLogMiddleware writes one structured line per request.
func (h *Handler) accessLogMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
		"request_id", requestIDFrom(c),
	)
}

// recoveryHandler turns a handler panic into a logged 500.
func (h *Handler) recoveryHandler(c *gin.Context, recovered any) {
	h.log.Errorw("panic_recovered", "panic", recovered, "path", c.Request.URL.Path, "request_id", requestIDFrom(c))
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody(codeInternal, msgInternal))
}
