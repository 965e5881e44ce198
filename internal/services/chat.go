package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsrpwl/flordiee/pkg/genai"
	"github.com/fsrpwl/flordiee/pkg/prompts"
)

// ChatService generates grounded chat responses for the community
// chatbot. Grounding is simulated through the search tool flag.
type ChatService struct {
	genAI GenAIService
	model string
	log   *slog.Logger
}

// NewChatService creates a new chat service
func NewChatService(genAI GenAIService, model string, log *slog.Logger) *ChatService {
	return &ChatService{
		genAI: genAI,
		model: model,
		log:   log,
	}
}

// GenerateChatResponse generates a conversational, search-grounded
// response for the user's query.
func (s *ChatService) GenerateChatResponse(ctx context.Context, userQuery string) (*genai.Response, error) {
	if userQuery == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}

	cfg := genai.NewGenerationConfig(prompts.ChatSystemPrompt,
		genai.ToolFlag{Name: genai.GoogleSearchToolName})

	resp, err := s.genAI.GenerateContent(ctx, s.model, userQuery, cfg)
	if err != nil {
		s.log.Error("Error generating chat response", "error", err)
		return nil, fmt.Errorf("failed to generate chat response: %w", err)
	}

	if resp.Sources == nil {
		resp.Sources = []genai.Source{}
	}
	return resp, nil
}
