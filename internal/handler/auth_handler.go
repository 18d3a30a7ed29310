package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/indiabills/console/internal/service"
	"github.com/indiabills/console/internal/utils"
)

type AuthHandler struct {
	sessions *service.SessionService
}

func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login authenticates against the upstream API (and the local console
// passcode when one is configured) and returns the session plus the
// local console token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Passcode string `json:"passcode"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	sess, token, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password, req.Passcode)
	if err != nil {
		utils.Error(c, 401, "INVALID_CREDENTIALS", err.Error())
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"session": sess,
		"token":   token,
	})
}

// Logout clears the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	utils.Success(c, 200, "Logged out", nil)
}

// Session returns the current session identity without the token.
func (h *AuthHandler) Session(c *gin.Context) {
	sess, err := h.sessions.Current()
	if err != nil {
		utils.Error(c, 401, "NO_SESSION", "Not logged in")
		return
	}
	utils.Success(c, 200, "OK", gin.H{
		"id":   sess.ID,
		"name": sess.Name,
		"role": sess.Role,
	})
}
