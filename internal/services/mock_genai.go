package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/fsrpwl/flordiee/pkg/genai"
)

const tracePreviewLen = 50

// groundedChatText is the canned response for search-grounded chat.
const groundedChatText = "FSRPWL (Florida State Roleplay Whitelisted) is a highly structured " +
	"roleplay community focused on the **Emergency Response: Liberty County** game on Roblox. " +
	"We emphasize maturity, realism, and adherence to realistic procedures. " +
	"Here is a table of our core departments:\n\n" +
	"| Department | Primary Focus |\n" +
	"|---|---|\n" +
	"| FHP | Interstate enforcement & traffic |\n" +
	"| Sheriff's Office | Patrol, investigations, community policing |\n" +
	"| Fire & Rescue | Medical, fire suppression, technical rescue |\n" +
	"| Communications | Call taking & unit coordination |\n\n" +
	"If you'd like to dive deeper into any department, just ask!"

// creativeScenarioText is the canned response for creative scenario generation.
const creativeScenarioText = "**Scenario: Armed Robbery in Progress.** You are a Sheriff's Office deputy responding to a 211 (Armed Robbery) at the County Bank branch. " +
	"Dispatch reports two suspects inside with handguns. Multiple 911 calls confirm that hostages have been taken. " +
	"Your primary directive is to establish a secure perimeter, contain the suspects, and coordinate with specialized units (SWAT) as they arrive on scene. **Do not engage alone.** Your decisions on prioritizing life safety vs. containment are crucial."

var groundedChatSources = []genai.Source{
	{Title: "FSRPWL Community Guidelines", URI: "https://example.com/fsrpwl-rules"},
	{Title: "Roblox ER:LC Wiki", URI: "https://example.com/erlc-wiki"},
}

// MockGenAIService is a canned implementation of GenAIService. It never
// makes a network call; responses are fixed by request mode.
type MockGenAIService struct {
	apiKey string // accepted for parity with a real client, unused
	log    *slog.Logger

	// Track calls for testing
	GenerateContentCalls []GenerateContentCall

	mu sync.Mutex // protects GenerateContentCalls
}

type GenerateContentCall struct {
	Model    string
	Contents string
	Config   genai.GenerationConfig
}

// NewMockGenAIService creates a new mock generative AI service
func NewMockGenAIService(apiKey string, log *slog.Logger) *MockGenAIService {
	log.Info("Initializing mock Gemini client", "api_key_set", apiKey != "")
	return &MockGenAIService{
		apiKey:               apiKey,
		log:                  log,
		GenerateContentCalls: make([]GenerateContentCall, 0),
	}
}

// GenerateContent returns the canned payload for the config's request
// mode. It is total over non-empty inputs and deterministic: identical
// inputs always yield identical responses.
func (m *MockGenAIService) GenerateContent(ctx context.Context, model string, contents string, cfg genai.GenerationConfig) (*genai.Response, error) {
	if model == "" {
		return nil, fmt.Errorf("model cannot be empty")
	}
	if contents == "" {
		return nil, fmt.Errorf("contents cannot be empty")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.GenerateContentCalls = append(m.GenerateContentCalls, GenerateContentCall{
		Model:    model,
		Contents: contents,
		Config:   cfg,
	})
	m.mu.Unlock()

	m.log.Info("Mock API call",
		"request_id", uuid.New().String(),
		"model", model,
		"mode", cfg.Mode.String(),
		"query", truncate(contents, tracePreviewLen),
		"system_instruction", truncate(cfg.SystemInstruction, tracePreviewLen))

	if cfg.Mode == genai.ModeGrounded {
		// Fresh copy per call so callers can't mutate the canned sources
		sources := make([]genai.Source, len(groundedChatSources))
		copy(sources, groundedChatSources)
		return &genai.Response{
			Text:    groundedChatText,
			Sources: sources,
		}, nil
	}

	return &genai.Response{
		Text:    creativeScenarioText,
		Sources: []genai.Source{},
	}, nil
}

// Reset clears all call tracking
func (m *MockGenAIService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateContentCalls = make([]GenerateContentCall, 0)
}

// GetCalls returns a copy of the call tracking data in a thread-safe way
func (m *MockGenAIService) GetCalls() []GenerateContentCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]GenerateContentCall, len(m.GenerateContentCalls))
	copy(calls, m.GenerateContentCalls)
	return calls
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
