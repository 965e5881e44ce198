package genai

import "testing"

func TestNewGenerationConfig_ModeResolution(t *testing.T) {
	tests := []struct {
		name     string
		tools    []ToolFlag
		expected RequestMode
	}{
		{
			name:     "no tools is creative",
			tools:    nil,
			expected: ModeCreative,
		},
		{
			name:     "search tool is grounded",
			tools:    []ToolFlag{{Name: GoogleSearchToolName}},
			expected: ModeGrounded,
		},
		{
			name:     "search tool after another tool is still grounded",
			tools:    []ToolFlag{{Name: "code_execution"}, {Name: GoogleSearchToolName}},
			expected: ModeGrounded,
		},
		{
			name:     "unrelated tool only is creative",
			tools:    []ToolFlag{{Name: "code_execution"}},
			expected: ModeCreative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewGenerationConfig("You are a test assistant.", tt.tools...)
			if cfg.Mode != tt.expected {
				t.Errorf("Expected mode %s, got %s", tt.expected, cfg.Mode)
			}
			if len(cfg.Tools) != len(tt.tools) {
				t.Errorf("Expected %d tools, got %d", len(tt.tools), len(cfg.Tools))
			}
		})
	}
}

func TestGenerationConfig_Validate(t *testing.T) {
	cfg := NewGenerationConfig("You are a test assistant.")
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got error: %v", err)
	}

	empty := NewGenerationConfig("")
	if err := empty.Validate(); err == nil {
		t.Error("Expected error for empty system instruction, got nil")
	}
}

func TestRequestMode_String(t *testing.T) {
	if ModeGrounded.String() != "grounded" {
		t.Errorf("Expected 'grounded', got %q", ModeGrounded.String())
	}
	if ModeCreative.String() != "creative" {
		t.Errorf("Expected 'creative', got %q", ModeCreative.String())
	}
}
