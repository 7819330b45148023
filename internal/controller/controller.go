package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/lshigami/ielts-mock/internal/middleware"
	"github.com/lshigami/ielts-mock/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrPrecondition), errors.Is(err, service.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// RespondError writes err using the service error taxonomy. Internal errors
// are logged and their text is not sent to the client.
func RespondError(ctx *gin.Context, op string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", middleware.GetRequestID(ctx)).Msg(op + ": Service error")
		ctx.JSON(status, dto.ErrorResponse{Message: "Internal server error"})
		return
	}
	ctx.JSON(status, dto.ErrorResponse{Message: http.StatusText(status), Details: []string{err.Error()}})
}

// BindError answers a failed ShouldBind* call.
func BindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Msg(op + ": Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// ParseIDParam reads a positive numeric path parameter. On failure it writes a
// 400 and returns false.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format", Details: []string{raw}})
		return 0, false
	}
	return uint(id), true
}

// Caller returns the authenticated identity. Routes are mounted behind
// RequireAuth, so a missing identity is answered with 401.
func Caller(ctx *gin.Context) (identity.Identity, bool) {
	who, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return identity.Identity{}, false
	}
	return who, true
}
