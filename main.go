package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/templateshub/demos-backend/internal/api"
	"github.com/templateshub/demos-backend/internal/provider"
)

func main() {
	_ = godotenv.Load() // loads .env if present

	var chat provider.ChatProvider
	if _, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
		p, err := provider.NewOpenAIProvider(os.Getenv("OPENAI_CHAT_MODEL"))
		if err != nil {
			log.Printf("[main] provider init failed: %v", err)
		} else {
			chat = p
		}
	} else {
		log.Println("[main] OPENAI_API_KEY not set; chat endpoints will answer 500")
	}

	r := api.New(api.Config{Provider: chat})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("[main] server stopped: %v", err)
	}
}
