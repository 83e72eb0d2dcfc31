// Package api assembles the HTTP surface: one chat endpoint per demo
// site, the site lead/contact forms, and the service endpoints.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/templateshub/demos-backend/internal/catalog/dental"
	"github.com/templateshub/demos-backend/internal/catalog/restaurant"
	"github.com/templateshub/demos-backend/internal/catalog/salon"
	"github.com/templateshub/demos-backend/internal/provider"
	"github.com/templateshub/demos-backend/internal/ratelimit"
)

// Config carries the shared dependencies for the router. Provider may be
// nil when OPENAI_API_KEY is not set; chat endpoints then answer 500.
type Config struct {
	Provider provider.ChatProvider
	Limiter  *ratelimit.Limiter
	Now      func() time.Time
}

// New builds the gin router with all routes attached.
func New(cfg Config) *gin.Engine {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Limiter == nil {
		cfg.Limiter = ratelimit.New(ratelimit.DefaultLimit, ratelimit.DefaultWindow)
	}

	r := gin.Default()
	r.Use(corsMiddleware(), requestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "uptime": cfg.Now().Format(time.RFC3339)})
	})

	r.GET("/api/model", func(c *gin.Context) {
		model := "unconfigured"
		if cfg.Provider != nil {
			model = cfg.Provider.Model()
		}
		c.JSON(http.StatusOK, gin.H{"model": model})
	})

	r.POST("/api/restaurant/chat", chatHandler(cfg, restaurant.SystemPrompt, restaurant.NewRegistry(cfg.Now)))
	r.POST("/api/salon/chat", chatHandler(cfg, salon.SystemPrompt, salon.NewRegistry(cfg.Now)))
	r.POST("/api/dental/chat", chatHandler(cfg, dental.SystemPrompt, dental.NewRegistry(cfg.Now)))

	r.POST("/api/restaurant/reserve", reserveHandler(cfg.Now))
	r.POST("/api/salon/contact", contactHandler())
	r.POST("/api/dental/lead", leadHandler())

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Set("requestID", id)
		c.Next()
	}
}
