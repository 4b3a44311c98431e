package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HealthCheck is GET /api/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewRouter builds the Gin engine with permissive CORS and all API routes.
func NewRouter(jobs *JobHandler, identity *IdentityHandler, logs *LogHandler, openclaw *OpenClawHandler) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		api.GET("/jobs", jobs.List)
		api.POST("/jobs", jobs.Create)
		api.GET("/jobs/:id", jobs.Get)
		api.PUT("/jobs/:id", jobs.Update)
		api.POST("/jobs/:id/draft-email", jobs.DraftEmail)

		api.GET("/identity", identity.Get)
		api.PUT("/identity", identity.Update)

		api.GET("/logs", logs.List)
		api.POST("/logs", logs.Create)

		// Read-only mirror for the OpenClaw bot.
		oc := api.Group("/openclaw")
		{
			oc.GET("/jobs", openclaw.Jobs)
			oc.GET("/identity", openclaw.Identity)
			oc.GET("/logs", openclaw.Logs)
			oc.GET("/events", openclaw.Events)
			oc.GET("/feed", openclaw.Feed)
		}
	}

	return r
}
