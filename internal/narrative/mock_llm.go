package narrative

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM is a deterministic TextGenerator for tests and offline use.
type MockLLM struct {
	// Response is the fixed text returned by Generate.
	// If empty, a default response is generated from the prompt.
	Response string

	// Error, if set, is returned by Generate instead of a response.
	Error error

	// LastPrompt stores the most recent prompt passed to Generate.
	LastPrompt string

	// LastMaxLength stores the most recent length bound passed to Generate.
	LastMaxLength int
}

// NewMockLLM creates a mock LLM with the given fixed response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// NewMockLLMWithError creates a mock LLM that always returns an error.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Error: err}
}

// Generate returns the configured response or generates a deterministic one.
func (m *MockLLM) Generate(ctx context.Context, prompt string, maxLength int) (string, error) {
	m.LastPrompt = prompt
	m.LastMaxLength = maxLength

	if m.Error != nil {
		return "", m.Error
	}

	if m.Response != "" {
		return m.Response, nil
	}

	return generateMockResponse(prompt), nil
}

// generateMockResponse echoes the prompt and appends a canned explanation,
// the way a causal language model continues its input.
func generateMockResponse(prompt string) string {
	flower := "this flower"
	if _, rest, ok := strings.Cut(prompt, "behind the "); ok {
		flower = strings.TrimSuffix(strings.TrimSpace(rest), ".")
	}

	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("The %s has appeared in gardens and bouquets for centuries. ", flower))
	b.WriteString("Victorian floriography gave each bloom a message that could be sent without words. ")
	b.WriteString("Its colour and shape shaped the sentiment it carried.")

	return b.String()
}
