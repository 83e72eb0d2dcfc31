package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/templateshub/demos-backend/internal"
	"github.com/templateshub/demos-backend/internal/chat"
	"github.com/templateshub/demos-backend/internal/provider"
	"github.com/templateshub/demos-backend/internal/tools"
)

// chatHandler runs the full request pipeline for one site's assistant:
// configuration guard, rate limit, body validation, then the engine.
func chatHandler(cfg Config, systemPrompt string, reg *tools.Registry) gin.HandlerFunc {
	var engine *chat.Engine
	if cfg.Provider != nil {
		engine = chat.NewEngine(cfg.Provider, systemPrompt, reg)
	}

	return func(c *gin.Context) {
		if engine == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server misconfiguration: missing OPENAI_API_KEY."})
			return
		}

		if !cfg.Limiter.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please wait a moment and try again."})
			return
		}

		var req internal.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
			return
		}
		if err := chat.ValidateMessages(req.Messages); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		reply, err := engine.Respond(c.Request.Context(), req.Messages)
		if err != nil {
			log.Printf("[chat] provider error: %v", err)
			msg := "Something went wrong while generating a response."
			if errors.Is(err, provider.ErrOverloaded) {
				msg = "Our AI service is busy. Please try again in a moment."
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": msg})
			return
		}

		c.JSON(http.StatusOK, internal.ChatResponse{Role: "assistant", Content: reply})
	}
}
