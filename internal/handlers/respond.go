package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/middleware"
)

// respondSuccess writes the uniform success envelope.
func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, dto.SuccessEnvelope(data))
}

// respondError maps a service error onto a status code and writes the
// uniform error envelope. Internal errors are logged with detail but
// surfaced with a generic message.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorEnvelope(fallbackMsg))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorEnvelope("Access denied. Manager role required."))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorEnvelope("Unauthorized"))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.ErrorEnvelope(err.Error()))
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, dto.ErrorEnvelope(appErr.Message))
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorEnvelope(fallbackMsg))
	}
}

// requirePrincipal fetches the authenticated principal or aborts with
// 401. The auth middleware guarantees it for /api/v1 routes; this guard
// covers misconfigured route groups.
func requirePrincipal(c *gin.Context) (domain.Principal, bool) {
	p, found := middleware.GetPrincipalFromContext(c)
	if !found {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorEnvelope("Unauthorized"))
		return domain.Principal{}, false
	}
	return p, true
}
