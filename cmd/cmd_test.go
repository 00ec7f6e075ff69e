package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Yates-Labs/floriography/internal/config"
	"github.com/Yates-Labs/floriography/internal/imagehost"
	"github.com/Yates-Labs/floriography/internal/narrative"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flowers.csv")
	data := "Color,Flower,Meaning\nRed,Rose,Love\n,Tulip,Fame\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		datasetFlag, logLevelFlag = "", ""
		noNarrative, noImage, offline = false, false, false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFlowerCommand(t *testing.T) {
	path := writeDataset(t)

	out, err := execute(t, "flower", "Red", "Rose", "--dataset", path, "--offline", "--no-image", "--log-level", "error")
	if err != nil {
		t.Fatalf("flower command failed: %v", err)
	}
	if !strings.Contains(out, "Information for Red Rose:") {
		t.Errorf("expected flower panel, got:\n%s", out)
	}
	if !strings.Contains(out, "Love") {
		t.Errorf("expected meaning in output, got:\n%s", out)
	}
}

func TestFlowerCommand_NotFound(t *testing.T) {
	path := writeDataset(t)

	out, err := execute(t, "flower", "blue", "orchid", "--dataset", path, "--no-narrative", "--no-image", "--log-level", "error")
	if err != nil {
		t.Fatalf("flower command failed: %v", err)
	}
	if !strings.Contains(out, "Blue Orchid") {
		t.Errorf("expected title-cased miss, got:\n%s", out)
	}
}

func TestMeaningCommand(t *testing.T) {
	path := writeDataset(t)

	out, err := execute(t, "meaning", "fame", "--dataset", path, "--no-image", "--log-level", "error")
	if err != nil {
		t.Fatalf("meaning command failed: %v", err)
	}
	if !strings.Contains(out, "Tulip") {
		t.Errorf("expected Tulip, got:\n%s", out)
	}
}

func TestLookupCommand_MissingDataset(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")

	out, err := execute(t, "meaning", "love", "--dataset", missing, "--no-image", "--log-level", "error")
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}
	if !strings.Contains(out, "There was an issue with loading the dataset.") {
		t.Errorf("expected dataset panel, got:\n%s", out)
	}
}

func TestListCommand(t *testing.T) {
	path := writeDataset(t)

	out, err := execute(t, "list", "meanings", "--dataset", path, "--log-level", "error")
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}
	for _, want := range []string{"Meanings", "Fame", "Love", "2 entries"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestNewTextGenerator(t *testing.T) {
	llm, err := newTextGenerator(narrative.DefaultLLMConfig(), true)
	if err != nil {
		t.Fatalf("offline generator: %v", err)
	}
	if _, ok := llm.(*narrative.MockLLM); !ok {
		t.Errorf("expected MockLLM offline, got %T", llm)
	}

	t.Setenv("OPENAI_API_KEY", "")
	llm, err = newTextGenerator(narrative.DefaultLLMConfig(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if llm != nil {
		t.Errorf("expected narratives disabled without a key, got %T", llm)
	}

	withKey := narrative.DefaultLLMConfig()
	withKey.APIKey = "sk-test"
	llm, err = newTextGenerator(withKey, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := llm.(*narrative.OpenAILLM); !ok {
		t.Errorf("expected OpenAILLM, got %T", llm)
	}
}

func TestNewProber(t *testing.T) {
	tests := []struct {
		probe   string
		want    string
		wantErr bool
	}{
		{probe: "", want: "*imagehost.HTTPProber"},
		{probe: "http", want: "*imagehost.HTTPProber"},
		{probe: "github", want: "*imagehost.GitHubProber"},
		{probe: "ftp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.probe, func(t *testing.T) {
			prober, err := newProber(config.ImageConfig{Probe: tt.probe, BaseURL: imagehost.DefaultBaseURL})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch tt.want {
			case "*imagehost.HTTPProber":
				if _, ok := prober.(*imagehost.HTTPProber); !ok {
					t.Errorf("got %T, want %s", prober, tt.want)
				}
			case "*imagehost.GitHubProber":
				if _, ok := prober.(*imagehost.GitHubProber); !ok {
					t.Errorf("got %T, want %s", prober, tt.want)
				}
			}
		})
	}
}
