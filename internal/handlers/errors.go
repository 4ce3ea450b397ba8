package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"resource_api/internal/repository"
	"resource_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Stable machine-readable error codes.
const (
	codeBadRequest   = "bad_request"
	codeUnauthorized = "unauthorized"
	codeNotFound     = "not_found"
	codeConflict     = "conflict"
	codeInternal     = "internal"
)

const (
	msgAuthRequired     = "authentication required"
	msgRouteNotFound    = "not found"
	msgResourceNotFound = "resource not found"
	msgConflict         = "resource conflicts with existing data"
	msgInternal         = "internal server error"
	msgInvalidID        = "invalid id: must be a positive integer"
	msgInvalidLimit     = "invalid limit: must be a positive integer"
	errInvalidBodyPref  = "invalid body: "
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code  string `json:"code" example:"not_found"`
	Error string `json:"error" example:"resource not found"`
}

func errorBody(code, msg string) ErrorResponse {
	return ErrorResponse{Code: code, Error: msg}
}

// abortUnauthorized writes the single 401 shape used for every auth failure.
func (h *Handler) abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", fmt.Sprintf(`Basic realm=%q, charset="UTF-8"`, h.cfg.Realm))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(codeUnauthorized, msgAuthRequired))
}

func (h *Handler) badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody(codeBadRequest, msg))
}

// translate maps a service/repository error to status, code and client-safe message.
func translate(err error) (int, string, string) {
	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, codeBadRequest, err.Error()
	}

	var se *repository.StoreError
	if errors.As(err, &se) {
		switch se.Kind {
		case repository.KindNotFound:
			return http.StatusNotFound, codeNotFound, msgResourceNotFound
		case repository.KindConflict:
			return http.StatusConflict, codeConflict, msgConflict
		}
	}
	return http.StatusInternalServerError, codeInternal, msgInternal
}

// respondError logs err with request context and writes the translated response.
// Raw error text only goes to the log.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	status, code, msg := translate(err)

	fields := append([]interface{}{
		"err", err,
		"status", status,
		"request_id", requestIDFrom(c),
		"user", identityFrom(c).Username,
	}, kv...)
	switch {
	case status >= http.StatusInternalServerError:
		h.log.Errorw(logKey, fields...)
	case status == http.StatusConflict:
		h.log.Warnw(logKey, fields...)
	default:
		h.log.Infow(logKey, fields...)
	}

	c.AbortWithStatusJSON(status, errorBody(code, msg))
}
