package config

import (
	"context"
	"log"

	"google.golang.org/genai"
)

// GenAIClient is process-wide state: configured once at startup, read-only
// afterwards. A nil client means the AI search assist is disabled.
var GenAIClient *genai.Client
var GenAIModel string

func InitGenAI() {
	GenAIModel = GlobalConfig.AI.Model
	if GenAIModel == "" {
		GenAIModel = "gemini-1.5-flash"
	}
	if GlobalConfig.AI.APIKey == "" {
		log.Println("No Google AI API key configured, search assist disabled")
		return
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: GlobalConfig.AI.APIKey,
	})
	if err != nil {
		log.Printf("Failed to create GenAI client, search assist disabled: %v", err)
		return
	}
	GenAIClient = client
}
