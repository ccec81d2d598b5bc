// Package api exposes reconcile over HTTP for callers that cannot run
// the CLI, guarded by a static bearer token.
package api

import (
	"technitium_sync/internal/httpx"

	"github.com/gin-gonic/gin"
)

// SetupRouter sets up the API v1 routes
func SetupRouter(r *gin.Engine, token string) {
	v1 := r.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.GET("/ping", pingHandler)

		// Protected routes (token required)
		protected := v1.Group("")
		protected.Use(TokenRequired(token))
		{
			protected.POST("/reconcile", reconcileHandler)
		}
	}
}

// pingHandler handles the ping request using unified response
func pingHandler(c *gin.Context) {
	httpx.OK(c, gin.H{
		"pong": true,
	})
}
