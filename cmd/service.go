package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Yates-Labs/floriography/internal/config"
	"github.com/Yates-Labs/floriography/internal/imagehost"
	"github.com/Yates-Labs/floriography/internal/narrative"
	"github.com/Yates-Labs/floriography/internal/orchestrator"
)

// serviceOptions switch collaborators off for a single invocation.
type serviceOptions struct {
	noNarrative bool
	noImage     bool
	offline     bool
}

// newService wires the orchestrator from configuration.
func newService(cfg config.Config, opts serviceOptions) (*orchestrator.Service, error) {
	svcConfig := orchestrator.Config{Location: cfg.Dataset.Location}

	if !opts.noNarrative {
		llm, err := newTextGenerator(cfg.LLM, opts.offline)
		if err != nil {
			return nil, err
		}
		if llm != nil {
			svcConfig.Narrator = narrative.NewGenerator(llm, cfg.LLM)
		}
	}

	if !opts.noImage {
		prober, err := newProber(cfg.Images)
		if err != nil {
			return nil, err
		}
		svcConfig.Images = imagehost.NewResolver(cfg.Images.BaseURL, prober)
	}

	return orchestrator.NewService(svcConfig), nil
}

// newTextGenerator returns nil when no model is reachable, which disables narratives.
func newTextGenerator(llmConfig narrative.LLMConfig, offline bool) (narrative.TextGenerator, error) {
	if offline {
		return &narrative.MockLLM{}, nil
	}
	if llmConfig.APIKey == "" {
		slog.Warn("OPENAI_API_KEY not set, narratives disabled")
		return nil, nil
	}

	llm, err := narrative.NewOpenAILLM(llmConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return llm, nil
}

func newProber(images config.ImageConfig) (imagehost.Prober, error) {
	switch images.Probe {
	case "", "http":
		return imagehost.NewHTTPProber(imagehost.WithTimeout(images.Timeout)), nil
	case "github":
		client := imagehost.NewGitHubClient(images.GitHubToken)
		return imagehost.NewGitHubProber(client, images.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown image probe %q (want http or github)", images.Probe)
	}
}
