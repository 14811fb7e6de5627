package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/buyer-leads/internal/config"
	"github.com/BruksfildServices01/buyer-leads/internal/dto"
	"github.com/BruksfildServices01/buyer-leads/internal/httperr"
	"github.com/BruksfildServices01/buyer-leads/internal/httpresp"
	"github.com/BruksfildServices01/buyer-leads/internal/middleware"
	"github.com/BruksfildServices01/buyer-leads/internal/usecase/session"
)

type AuthHandler struct {
	login   *session.Login
	current *session.CurrentUser
	config  *config.Config
}

func NewAuthHandler(login *session.Login, current *session.CurrentUser, cfg *config.Config) *AuthHandler {
	return &AuthHandler{login: login, current: current, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email is required.")
		return
	}

	out, err := h.login.Execute(c.Request.Context(), session.LoginInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		writeError(c, err, "failed_to_login")
		return
	}

	h.setSessionCookie(c, out.Token, int(h.config.SessionTTL.Seconds()))

	httpresp.OK(c, gin.H{
		"user":      dto.NewUserDTO(out.User),
		"token":     out.Token,
		"expiresAt": out.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	httpresp.OK(c, gin.H{"success": true})
}

// Me returns the current user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.current.Execute(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		writeError(c, err, "failed_to_load_user")
		return
	}

	httpresp.OK(c, gin.H{"user": dto.NewUserDTO(user)})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.config.IsProduction(), true)
}
