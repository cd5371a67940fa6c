package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"appforge.backend/internal/interfaces/http/handlers"
	"appforge.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	devKeyHandler     *handlers.DevKeyHandler
	projectHandler    *handlers.ProjectHandler
	credentialHandler *handlers.CredentialHandler
	githubHandler     *handlers.GithubHandler
	logsHandler       *handlers.LogsHandler
	publicHandler     *handlers.PublicHandler
	banGuard          gin.HandlerFunc
	globalRateLimit   gin.HandlerFunc
	apiKeyAuth        gin.HandlerFunc
	perKeyRateLimit   gin.HandlerFunc
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/v1/health", handlers.Health)

	// Public pages sit behind the global IP window only.
	public := r.Group("/public")
	public.Use(d.globalRateLimit)
	{
		public.GET("/projects/:id/privacy", d.publicHandler.PrivacyByID)
		public.GET("/projects/slug/:slug/privacy", d.publicHandler.PrivacyBySlug)
	}

	// Everything under /v1 (health aside) runs the full gate: banned
	// IPs first, then the global window, then key auth, then the
	// per-key window.
	v1 := r.Group("/v1")
	v1.Use(d.banGuard, d.globalRateLimit, d.apiKeyAuth, d.perKeyRateLimit)
	{
		v1.GET("/me", d.devKeyHandler.Me)
		v1.POST("/devkeys", middleware.RequireAdmin(), d.devKeyHandler.Create)
		v1.GET("/logs", middleware.RequireAdmin(), d.logsHandler.List)

		projects := v1.Group("/projects")
		{
			projects.POST("", d.projectHandler.Create)
			projects.GET("", d.projectHandler.List)
			projects.GET("/:id", d.projectHandler.Get)
			projects.PATCH("/:id", d.projectHandler.Update)
			projects.DELETE("/:id", d.projectHandler.Delete)

			projects.PUT("/:id/credentials/:type", d.credentialHandler.Upsert)
			projects.GET("/:id/credentials", d.credentialHandler.List)
			projects.POST("/:id/credentials/:type/download", d.credentialHandler.Download)

			projects.PUT("/:id/github/pat", d.githubHandler.StorePAT)
			projects.POST("/:id/github/sync-secrets", d.githubHandler.SyncSecrets)
			projects.POST("/:id/github/dispatch", d.githubHandler.Dispatch)
			projects.GET("/:id/github/runs", d.githubHandler.ListRuns)
			projects.GET("/:id/github/runs/:runId", d.githubHandler.GetRun)
			projects.GET("/:id/builds", d.githubHandler.ListBuilds)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine, origin string) {
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Api-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
