package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsrpwl/flordiee/pkg/genai"
	"github.com/fsrpwl/flordiee/pkg/prompts"
)

// ScenarioService generates creative roleplay scenarios for a
// department. Scenario calls are never grounded.
type ScenarioService struct {
	genAI GenAIService
	model string
	log   *slog.Logger
}

// NewScenarioService creates a new scenario service
func NewScenarioService(genAI GenAIService, model string, log *slog.Logger) *ScenarioService {
	return &ScenarioService{
		genAI: genAI,
		model: model,
		log:   log,
	}
}

// GenerateRPScenario generates a short roleplay scenario prompt for the
// named department. Only the response text is returned.
func (s *ScenarioService) GenerateRPScenario(ctx context.Context, department string) (string, error) {
	if department == "" {
		return "", fmt.Errorf("department cannot be empty")
	}

	cfg := genai.NewGenerationConfig(prompts.ScenarioSystemPrompt)

	resp, err := s.genAI.GenerateContent(ctx, s.model, prompts.ScenarioPrompt(department), cfg)
	if err != nil {
		s.log.Error("Error generating scenario", "error", err, "department", department)
		return "", fmt.Errorf("failed to generate scenario: %w", err)
	}

	return resp.Text, nil
}
