package handlers

import (
	"errors"
	"net/http"
	"strings"

	"homezy/i18n"
	"homezy/middleware"
	"homezy/models"
	"homezy/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the login endpoint the front end calls.
type AuthHandler struct {
	UserService user.UserService
	Localizer   *i18n.Localizer
}

func NewAuthHandler(userService user.UserService, localizer *i18n.Localizer) *AuthHandler {
	return &AuthHandler{UserService: userService, Localizer: localizer}
}

// LoginHandler handles POST /auth/login.
//
// A suspended account is a business-level failure: the HTTP status is 200
// and the embedded statusCode is 403.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)
	loc := middleware.GetLocale(c)

	var req models.LoginCredentials
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		logger.Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    h.Localizer.TFor(loc, i18n.KeyBadRequest),
		})
		return
	}

	authResp, err := h.UserService.AuthenticateUser(req.Email, req.Password)
	switch {
	case errors.Is(err, user.ErrSuspended):
		logger.Info("Login refused for suspended account", zap.String("email", req.Email))
		c.JSON(http.StatusOK, models.AuthResponse{
			StatusCode: http.StatusForbidden,
			Message:    h.Localizer.TFor(loc, i18n.KeySuspended),
		})
		return
	case errors.Is(err, user.ErrInvalidCredentials):
		logger.Info("Login failed", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			StatusCode: http.StatusUnauthorized,
			Message:    h.Localizer.TFor(loc, i18n.KeyInvalidCredentials),
		})
		return
	case err != nil:
		logger.Error("Login error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Message:    h.Localizer.TFor(loc, i18n.KeyLoginError),
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		StatusCode: http.StatusOK,
		Message:    h.Localizer.TFor(loc, i18n.KeyLoginSuccess),
		Data: models.AuthData{
			ID:          authResp.ID,
			FullName:    authResp.FullName,
			Email:       authResp.Email,
			AccessToken: authResp.AccessToken,
		},
	})
}
