package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// registerHealthRoutes adds the liveness endpoint. When dbPool is
// non-nil and checks are enabled, health also pings storage so a dead
// pool is visible to probes instead of only to the next request.
func registerHealthRoutes(r *gin.Engine, dbPool *pgxpool.Pool, enableDBCheck bool) {
	r.GET("/health", func(c *gin.Context) {
		if enableDBCheck && dbPool != nil {
			if err := dbPool.Ping(c.Request.Context()); err != nil {
				c.String(http.StatusServiceUnavailable, "DB UNREACHABLE")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	})
}
