package narrative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrGenerationFailed = errors.New("narrative generation failed")
)

// Narrative is a generated explanation of why a flower carries its meaning.
type Narrative struct {
	// Label is the flower label the narrative describes
	Label string `json:"label"`

	// Meaning is the recorded meaning embedded in the prompt
	Meaning string `json:"meaning"`

	// Text is the generated content, trimmed to MaxSentences sentences
	Text string `json:"text"`

	// GeneratedAt is when this narrative was created
	GeneratedAt time.Time `json:"generated_at"`

	// Model is the model used to generate this narrative
	Model string `json:"model"`
}

// Generator produces flower narratives using a TextGenerator.
type Generator struct {
	llm    TextGenerator
	config LLMConfig
}

// NewGenerator creates a narrative generator with the given text generator.
func NewGenerator(llm TextGenerator, config LLMConfig) *Generator {
	return &Generator{
		llm:    llm,
		config: config,
	}
}

// Generate asks the model about label and meaning and keeps the first
// MaxSentences sentences of the answer. Empty model output is not an error.
func (g *Generator) Generate(ctx context.Context, label, meaning string) (*Narrative, error) {
	if g.llm == nil {
		return nil, fmt.Errorf("%w: LLM is required", ErrGenerationFailed)
	}
	if strings.TrimSpace(label) == "" {
		return nil, fmt.Errorf("%w: flower label is required", ErrGenerationFailed)
	}
	if strings.TrimSpace(meaning) == "" {
		meaning = DefaultMeaning
	}

	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	text, err := g.llm.Generate(ctx, AssemblePrompt(label, meaning), g.config.MaxLength)
	if err != nil {
		return nil, fmt.Errorf("%w: LLM invocation failed: %w", ErrGenerationFailed, err)
	}

	return &Narrative{
		Label:       label,
		Meaning:     meaning,
		Text:        LimitSentences(text, MaxSentences),
		GeneratedAt: time.Now(),
		Model:       g.config.Model,
	}, nil
}
