package public

import (
	"time"

	"github.com/minishop/internal/constants"
	"github.com/minishop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UserCredentialsRequest 注册/登录请求
type UserCredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserRegister 用户注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := h.UserAuthService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err, "registration failed")
		return
	}
	response.Success(c, gin.H{
		"message": "User Registered",
		"user":    user,
	})
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	session, err := h.UserAuthService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err, "login failed")
		return
	}
	response.Success(c, gin.H{
		"token":     session.Token,
		"expiresAt": session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// GetCurrentUser 返回当前令牌携带的身份
func (h *Handler) GetCurrentUser(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}
	data := gin.H{
		"userId":   id,
		"username": c.GetString(constants.ContextKeyUsername),
	}
	if expiresAt, ok := c.Get(constants.ContextKeyExpiresAt); ok {
		if t, ok := expiresAt.(time.Time); ok {
			data["expiresAt"] = t.UTC().Format(time.RFC3339)
		}
	}
	response.Success(c, data)
}
