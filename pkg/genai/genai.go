package genai

import "fmt"

// GoogleSearchToolName is the tool flag that requests search grounding
// from a generation call.
const GoogleSearchToolName = "google_search"

// RequestMode selects how a generation request is fulfilled.
type RequestMode int

const (
	// ModeCreative produces free-form text with no citation data.
	ModeCreative RequestMode = iota
	// ModeGrounded produces text conditioned on search grounding,
	// accompanied by source citations.
	ModeGrounded
)

func (m RequestMode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	default:
		return "creative"
	}
}

// ToolFlag marks an auxiliary capability the generation call should use.
type ToolFlag struct {
	Name string `json:"name"`
}

// GenerationConfig carries the system instruction and tool flags for a
// single generation call. It is built once per call and not modified
// afterward. The request mode is fixed at construction: a config is
// grounded if any of its tool flags names the search tool, not just
// the first one.
type GenerationConfig struct {
	SystemInstruction string      `json:"system_instruction"`
	Tools             []ToolFlag  `json:"tools,omitempty"`
	Mode              RequestMode `json:"-"`
}

// NewGenerationConfig builds a GenerationConfig and resolves its
// request mode from the supplied tool flags.
func NewGenerationConfig(systemInstruction string, tools ...ToolFlag) GenerationConfig {
	mode := ModeCreative
	for _, t := range tools {
		if t.Name == GoogleSearchToolName {
			mode = ModeGrounded
			break
		}
	}
	return GenerationConfig{
		SystemInstruction: systemInstruction,
		Tools:             tools,
		Mode:              mode,
	}
}

func (c GenerationConfig) Validate() error {
	if c.SystemInstruction == "" {
		return fmt.Errorf("system instruction cannot be empty")
	}
	return nil
}

// Source is a single citation backing a grounded response.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Response is the result of one generation call. Sources is empty
// unless the call was grounded.
type Response struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}
