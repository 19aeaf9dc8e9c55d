package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/quillpress/quillpress/internal/interface/http"
	"github.com/quillpress/quillpress/internal/interface/middleware"
	"github.com/quillpress/quillpress/pkg/helpers"
)

// PostModule wires the post routes.
// Public (optional auth): GET /api/posts, GET /api/posts/:slug
// Protected (author only): POST /api/posts, PUT/DELETE /api/posts/:id
type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager, rdb *redis.Client) *PostModule {
	return &PostModule{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	// Reads carry identity when a token is present so draft visibility can
	// be resolved, but never require one. The read limiter is keyed by IP
	// and waived for private networks so probes and internal tooling are
	// not throttled.
	optional := middleware.Auth(m.JWT, middleware.Optional)
	readLimiter := middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/posts", optional, readLimiter, m.Handler.List)
	rg.GET("/posts/:slug", optional, readLimiter, m.Handler.GetBySlug)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, middleware.Required))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.PUT("/posts/:id", m.Handler.Update)
		auth.DELETE("/posts/:id", m.Handler.Delete)
	}
}
