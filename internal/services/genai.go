package services

import (
	"context"

	"github.com/fsrpwl/flordiee/pkg/genai"
)

// GenAIService defines the interface for generative content calls
type GenAIService interface {
	// GenerateContent produces a response for the given model, prompt
	// and generation config
	GenerateContent(ctx context.Context, model string, contents string, cfg genai.GenerationConfig) (*genai.Response, error)
}
