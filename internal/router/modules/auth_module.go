package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/quillpress/quillpress/internal/interface/http"
	"github.com/quillpress/quillpress/internal/interface/middleware"
)

// AuthModule wires registration and login under /api/auth with per-IP rate
// limits on both credential endpoints.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Redis   *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
