package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quillpress/quillpress/pkg/response"
)

// HealthModule exposes a liveness endpoint reporting database reachability.
type HealthModule struct {
	Pool *pgxpool.Pool
}

func NewHealthModule(pool *pgxpool.Pool) *HealthModule {
	return &HealthModule{Pool: pool}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		db := "ok"
		if err := m.Pool.Ping(ctx); err != nil {
			db = "unreachable"
		}
		response.Success(c, http.StatusOK, gin.H{"db": db}, nil)
	})
}
