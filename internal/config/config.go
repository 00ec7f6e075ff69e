package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Yates-Labs/floriography/internal/imagehost"
	"github.com/Yates-Labs/floriography/internal/narrative"
)

// Config holds all floriography configuration.
type Config struct {
	Dataset DatasetConfig
	Images  ImageConfig
	LLM     narrative.LLMConfig
	Server  ServerConfig
	Log     LogConfig
}

// DatasetConfig points at the language-of-flowers table.
type DatasetConfig struct {
	// Location is a file path or "<git-url>#<path/in/repo>"
	Location string
}

// ImageConfig holds image host settings.
type ImageConfig struct {
	BaseURL     string
	Timeout     time.Duration
	Probe       string // "http" or "github"
	GitHubToken string
}

// ServerConfig holds web shell settings.
type ServerConfig struct {
	Addr            string
	NarrativeRate   int // narrative requests per IP per hour, 0 = unlimited
	ShutdownTimeout time.Duration
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	llm := narrative.DefaultLLMConfig()
	llm.Model = getenv("FLORIOGRAPHY_MODEL", llm.Model)
	llm.BaseURL = os.Getenv("OPENAI_BASE_URL")
	llm.APIKey = os.Getenv("OPENAI_API_KEY")
	llm.MaxLength = getenvInt("FLORIOGRAPHY_MAX_LENGTH", llm.MaxLength)
	llm.Timeout = getenvDuration("FLORIOGRAPHY_LLM_TIMEOUT", llm.Timeout)
	llm.Temperature = float32(getenvFloat("FLORIOGRAPHY_TEMPERATURE", float64(llm.Temperature)))

	return Config{
		Dataset: DatasetConfig{
			Location: getenv("FLORIOGRAPHY_DATASET", "data/language-of-flowers.csv"),
		},
		Images: ImageConfig{
			BaseURL:     getenv("FLORIOGRAPHY_IMAGE_BASE_URL", imagehost.DefaultBaseURL),
			Timeout:     getenvDuration("FLORIOGRAPHY_IMAGE_TIMEOUT", 5*time.Second),
			Probe:       getenv("FLORIOGRAPHY_IMAGE_PROBE", "http"),
			GitHubToken: os.Getenv("GITHUB_TOKEN"),
		},
		LLM: llm,
		Server: ServerConfig{
			Addr:            getenv("FLORIOGRAPHY_ADDR", ":8501"),
			NarrativeRate:   getenvInt("FLORIOGRAPHY_NARRATIVE_RATE", 60),
			ShutdownTimeout: getenvDuration("FLORIOGRAPHY_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level: getenv("FLORIOGRAPHY_LOG_LEVEL", "info"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// getenvDuration accepts Go durations ("5s") or whole seconds ("5").
func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
