package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/middleware"
	"github.com/planet-detroit/civic-action-api/internal/service"
	"github.com/planet-detroit/civic-action-api/pkg/config"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
	"github.com/planet-detroit/civic-action-api/pkg/response"
)

// AuthHandler wires the editor session endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
	cfg     config.SessionConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, cfg config.SessionConfig) *AuthHandler {
	if cfg.CookieName == "" {
		cfg.CookieName = middleware.SessionCookieName
	}
	return &AuthHandler{service: svc, cfg: cfg}
}

// Login godoc
// @Summary Open an editor session
// @Description Exchange the shared editor password for a session cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	token, expiresAt, err := h.service.Login(req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, token, maxAge, "/", "", h.cfg.CookieSecure, true)
	response.JSON(c, http.StatusOK, dto.SessionStatus{Authenticated: true}, nil)
}

// Check godoc
// @Summary Check session status
// @Description Reports whether the request carries a valid session cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/check [get]
func (h *AuthHandler) Check(c *gin.Context) {
	token, err := c.Cookie(h.cfg.CookieName)
	authenticated := false
	if err == nil && token != "" {
		if _, verifyErr := h.service.Verify(token); verifyErr == nil {
			authenticated = true
		}
	}
	response.JSON(c, http.StatusOK, dto.SessionStatus{Authenticated: authenticated}, nil)
}

// Logout godoc
// @Summary Close the editor session
// @Description Expires the session cookie
// @Tags Authentication
// @Produce json
// @Success 204 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.CookieSecure, true)
	response.NoContent(c)
}
