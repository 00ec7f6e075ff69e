package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerator_Generate_Success(t *testing.T) {
	mockLLM := NewMockLLM("Red roses stand for love. They were sacred to Venus.")
	config := DefaultLLMConfig()
	config.Model = "test-model"

	gen := NewGenerator(mockLLM, config)

	narrative, err := gen.Generate(context.Background(), "red rose", "Love")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if narrative == nil {
		t.Fatal("narrative is nil")
	}

	if narrative.Label != "red rose" {
		t.Errorf("expected label red rose, got %s", narrative.Label)
	}

	if narrative.Meaning != "Love" {
		t.Errorf("expected meaning Love, got %s", narrative.Meaning)
	}

	if narrative.Text != "Red roses stand for love.They were sacred to Venus." {
		t.Errorf("unexpected narrative text: %s", narrative.Text)
	}

	if narrative.Model != "test-model" {
		t.Errorf("expected model test-model, got %s", narrative.Model)
	}

	if narrative.GeneratedAt.IsZero() {
		t.Error("generated timestamp is zero")
	}

	// Verify mock received the prompt and the length bound
	if mockLLM.LastPrompt != AssemblePrompt("red rose", "Love") {
		t.Errorf("mock LLM received unexpected prompt: %s", mockLLM.LastPrompt)
	}
	if mockLLM.LastMaxLength != 200 {
		t.Errorf("expected max length 200, got %d", mockLLM.LastMaxLength)
	}
}

func TestGenerator_Generate_TruncatesToFiveSentences(t *testing.T) {
	mockLLM := NewMockLLM("S1. S2. S3. S4. S5. S6. S7. S8.")
	gen := NewGenerator(mockLLM, DefaultLLMConfig())

	narrative, err := gen.Generate(context.Background(), "tulip", "Fame")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if narrative.Text != "S1.S2.S3.S4.S5." {
		t.Errorf("expected first five sentences, got %q", narrative.Text)
	}
}

func TestGenerator_Generate_EmptyMeaningUsesPlaceholder(t *testing.T) {
	mockLLM := NewMockLLM("Unknown.")
	gen := NewGenerator(mockLLM, DefaultLLMConfig())

	narrative, err := gen.Generate(context.Background(), "tulip", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if narrative.Meaning != DefaultMeaning {
		t.Errorf("expected placeholder meaning, got %q", narrative.Meaning)
	}
	if !strings.Contains(mockLLM.LastPrompt, DefaultMeaning) {
		t.Error("prompt does not contain the placeholder meaning")
	}
}

func TestGenerator_Generate_BlankMeaningUsesPlaceholder(t *testing.T) {
	mockLLM := NewMockLLM("Unknown.")
	gen := NewGenerator(mockLLM, DefaultLLMConfig())

	narrative, err := gen.Generate(context.Background(), "tulip", "  \t ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if narrative.Meaning != DefaultMeaning {
		t.Errorf("expected placeholder meaning for blank input, got %q", narrative.Meaning)
	}
	if !strings.Contains(mockLLM.LastPrompt, "'"+DefaultMeaning+"'") {
		t.Errorf("prompt does not carry the placeholder meaning: %q", mockLLM.LastPrompt)
	}
}

func TestGenerator_Generate_EmptyOutput(t *testing.T) {
	gen := NewGenerator(emptyLLM{}, DefaultLLMConfig())

	narrative, err := gen.Generate(context.Background(), "tulip", "Fame")
	if err != nil {
		t.Fatalf("empty output should not be an error: %v", err)
	}
	if narrative.Text != "" {
		t.Errorf("expected empty text, got %q", narrative.Text)
	}
}

func TestGenerator_Generate_MissingLabel(t *testing.T) {
	mockLLM := NewMockLLM("test")
	gen := NewGenerator(mockLLM, DefaultLLMConfig())

	_, err := gen.Generate(context.Background(), "", "Love")
	if err == nil {
		t.Fatal("expected error for missing label")
	}

	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerator_Generate_NilLLM(t *testing.T) {
	gen := NewGenerator(nil, DefaultLLMConfig())

	_, err := gen.Generate(context.Background(), "red rose", "Love")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerator_Generate_LLMError(t *testing.T) {
	llmErr := errors.New("API rate limit exceeded")
	mockLLM := NewMockLLMWithError(llmErr)
	gen := NewGenerator(mockLLM, DefaultLLMConfig())

	_, err := gen.Generate(context.Background(), "red rose", "Love")
	if err == nil {
		t.Fatal("expected error from LLM")
	}

	if !errors.Is(err, ErrGenerationFailed) {
		t.Errorf("expected ErrGenerationFailed, got %v", err)
	}
	if !errors.Is(err, llmErr) {
		t.Errorf("expected wrapped LLM error, got %v", err)
	}
}

func TestGenerator_Generate_Timeout(t *testing.T) {
	config := DefaultLLMConfig()
	config.Timeout = 20 * time.Millisecond
	gen := NewGenerator(&slowLLM{}, config)

	_, err := gen.Generate(context.Background(), "red rose", "Love")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestMockLLM_DefaultResponse(t *testing.T) {
	mockLLM := &MockLLM{}
	prompt := AssemblePrompt("red rose", "Love")

	text, err := mockLLM.Generate(context.Background(), prompt, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(text, prompt) {
		t.Error("mock response should continue the prompt")
	}
	if !strings.Contains(text, "The red rose has appeared") {
		t.Errorf("mock response should mention the flower: %s", text)
	}
	if len(SplitSentences(text)) < 3 {
		t.Errorf("mock response should have several sentences: %s", text)
	}
}

func TestNewOpenAILLM_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewOpenAILLM(DefaultLLMConfig())
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewOpenAILLM_MissingModel(t *testing.T) {
	config := DefaultLLMConfig()
	config.APIKey = "sk-test"
	config.Model = ""

	_, err := NewOpenAILLM(config)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestOpenAILLM_Generate_EmptyPrompt(t *testing.T) {
	config := DefaultLLMConfig()
	config.APIKey = "sk-test"

	llm, err := NewOpenAILLM(config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = llm.Generate(context.Background(), "", 200)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

type emptyLLM struct{}

func (emptyLLM) Generate(ctx context.Context, prompt string, maxLength int) (string, error) {
	return "", nil
}

type slowLLM struct{}

func (slowLLM) Generate(ctx context.Context, prompt string, maxLength int) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(time.Second):
		return "too late", nil
	}
}
