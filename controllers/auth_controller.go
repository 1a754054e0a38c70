package controllers

import (
	"net/http"

	"lacarreta/pkg/resp"
	"lacarreta/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthController struct {
	auth   *services.AuthService
	logger *zap.Logger
}

func NewAuthController(auth *services.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{auth: auth, logger: logger}
}

// POST /api/admin/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	token, err := a.auth.Login(req.Username, req.Password)
	if err != nil {
		a.logger.Warn("admin login rejected", zap.String("username", req.Username))
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
