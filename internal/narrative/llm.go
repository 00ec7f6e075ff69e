// Package narrative asks a pretrained text-generation model why a flower carries
// its traditional meaning. It defines a provider-agnostic generation interface with
// an OpenAI-compatible implementation and a deterministic mock for testing. The
// generator builds the prompt and trims the model output to a few sentences.
package narrative

import (
	"context"
	"errors"
	"time"
)

var (
	ErrLLMFailed     = errors.New("LLM request failed")
	ErrInvalidConfig = errors.New("invalid LLM configuration")
)

// TextGenerator is the external text-generation capability.
// Implementations must be stateless and thread-safe.
type TextGenerator interface {
	// Generate continues prompt, producing at most maxLength tokens.
	// The output is best-effort and may repeat itself or stop mid-sentence.
	Generate(ctx context.Context, prompt string, maxLength int) (string, error)
}

// LLMConfig holds common configuration options for LLM providers.
type LLMConfig struct {
	// Model specifies the model identifier (e.g., "gpt-4o-mini")
	Model string

	// BaseURL overrides the API endpoint for OpenAI-compatible servers
	BaseURL string

	// Temperature controls randomness (0.0 = deterministic, 2.0 = very random)
	Temperature float32

	// MaxLength bounds the generated output in tokens
	MaxLength int

	// Timeout bounds a single generation call (0 = no extra bound)
	Timeout time.Duration

	// APIKey is the authentication key for the provider
	APIKey string
}

// DefaultLLMConfig returns sensible defaults for flower narratives.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model:       "gpt-4o-mini",
		Temperature: 0, // model default
		MaxLength:   200,
		Timeout:     30 * time.Second,
	}
}
