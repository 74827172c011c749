package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/middleware"
)

// googleOAuthHandler handles Google OAuth related requests. The
// frontend performs the redirect dance and posts the resulting
// authorization code here.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// newGoogleOAuthHandler creates a new instance of googleOAuthHandler.
func newGoogleOAuthHandler(gs portssvc.GoogleOAuthSvcFacade, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: gs,
		userService:        us,
		tokenService:       ts,
	}
}

// registerGoogleOAuthRoutes sets up the public Google sign-in route.
func registerGoogleOAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)

	google := r.Group("/api/v1/auth/google")
	{
		google.POST("/exchange-code", h.exchangeCode)
	}
}

// exchangeCode godoc
// @Summary Exchange Google authorization code for an access token
// @Description Exchanges the authorization code obtained by the frontend for Google tokens, validates the ID token, creates or retrieves the user and returns an application JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.Envelope{data=dto.LoginResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorEnvelope("Invalid request payload: "+err.Error()))
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") || strings.Contains(strings.ToLower(err.Error()), "bad request") {
			respondError(c, apperrors.NewBadRequestError("Invalid or expired authorization code."), "")
			return
		}
		respondError(c, apperrors.NewAppError(http.StatusBadGateway, "Failed to communicate with Google OAuth service.", err), "")
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		respondError(c, apperrors.NewInternalServerError("Failed to retrieve ID token from Google."), "")
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Error("Google ID token validation failed", slog.String("error", err.Error()))
		respondError(c, apperrors.NewUnauthorizedError("Invalid Google ID token."), "")
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	providerUserID := payload.Subject
	if email == "" || providerUserID == "" {
		logger.Error("Essential claims missing from Google ID token payload")
		respondError(c, apperrors.NewInternalServerError("Essential user information missing from Google token."), "")
		return
	}
	if name == "" {
		name = email
	}

	user, err := h.userService.CreateOAuthUser(ctx, name, email, domain.ProviderGoogle, providerUserID)
	if err != nil {
		logger.Error("Failed to create or look up OAuth user", slog.String("error", err.Error()))
		respondError(c, apperrors.NewInternalServerError("Failed to sign in with Google."), "")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		respondError(c, apperrors.NewInternalServerError("Failed to generate token"), "")
		return
	}

	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}
