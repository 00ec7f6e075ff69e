// Package orchestrator answers the two user queries, flower to meaning and
// meaning to flower, by combining the cached dataset index with narrative
// generation and image resolution. Every failure below the dataset itself is
// absorbed into the result so the shell always has something to render.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/Yates-Labs/floriography/internal/catalog"
	"github.com/Yates-Labs/floriography/internal/lookup"
	"github.com/Yates-Labs/floriography/internal/narrative"
)

var (
	ErrDatasetUnavailable = errors.New("dataset unavailable")
	ErrNoSelection        = errors.New("no selection")
)

// Narrator produces the explanatory paragraph for a flower.
type Narrator interface {
	Generate(ctx context.Context, label, meaning string) (*narrative.Narrative, error)
}

// ImageResolver finds a picture for a flower label.
type ImageResolver interface {
	Resolve(ctx context.Context, label string) (string, bool)
}

// Config holds the pieces a Service is built from.
type Config struct {
	// Location is the dataset file path or "<git-url>#<path>"
	Location string

	// Catalog caches loaded datasets; nil creates a private one
	Catalog *catalog.Cache

	// Narrator generates narratives; nil disables them
	Narrator Narrator

	// Images resolves image URLs; nil disables them
	Images ImageResolver
}

// Service runs lookups against one dataset location.
type Service struct {
	location string
	catalog  *catalog.Cache
	narrator Narrator
	images   ImageResolver
}

// NewService creates a Service from config.
func NewService(config Config) *Service {
	cache := config.Catalog
	if cache == nil {
		cache = catalog.New()
	}
	return &Service{
		location: config.Location,
		catalog:  cache,
		narrator: config.Narrator,
		images:   config.Images,
	}
}

// Location returns the dataset location the service reads.
func (s *Service) Location() string {
	return s.location
}

// FlowerResult is the answer to a flower-name query.
type FlowerResult struct {
	Query       string    `json:"query"`
	Found       bool      `json:"found"`
	Label       string    `json:"label"`
	DisplayName string    `json:"display_name"`
	Meaning     string    `json:"meaning,omitempty"`
	Narrative   string    `json:"narrative,omitempty"`
	Model       string    `json:"model,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	GeneratedAt time.Time `json:"generated_at,omitempty"`
}

// MeaningResult is the answer to a meaning query.
type MeaningResult struct {
	Query       string `json:"query"`
	Found       bool   `json:"found"`
	Meaning     string `json:"meaning"`
	Flower      string `json:"flower,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Vocabulary lists every selectable flower label and meaning, sorted.
type Vocabulary struct {
	Flowers  []string `json:"flowers"`
	Meanings []string `json:"meanings"`
}

// Status summarizes the loaded dataset.
type Status struct {
	Location   string    `json:"location"`
	Records    int       `json:"records"`
	Skipped    int       `json:"skipped"`
	Flowers    int       `json:"flowers"`
	Meanings   int       `json:"meanings"`
	Duplicates int       `json:"duplicates"`
	LoadedAt   time.Time `json:"loaded_at"`

	// Cached lists every dataset location held by the catalog
	Cached []string `json:"cached"`
}

// LookupFlower finds the meaning of a flower label, then adds a narrative and
// an image when those collaborators are configured. A label missing from the
// dataset is a result with Found false, not an error.
func (s *Service) LookupFlower(ctx context.Context, query string) (*FlowerResult, error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	entry, err := s.entry(ctx)
	if err != nil {
		return nil, err
	}

	result := &FlowerResult{
		Query:       q,
		Label:       q,
		DisplayName: lookup.DisplayName(q),
	}

	meaning, ok := entry.Index.Meaning(q)
	if !ok {
		slog.Debug("flower not found", "query", q)
		return result, nil
	}
	result.Found = true
	result.Meaning = meaning

	if s.narrator != nil {
		narr, err := s.narrator.Generate(ctx, q, meaning)
		if err != nil {
			slog.Warn("narrative generation degraded", "label", q, "error", err)
		} else {
			result.Narrative = narr.Text
			result.Model = narr.Model
			result.GeneratedAt = narr.GeneratedAt
		}
	}

	if s.images != nil {
		if url, ok := s.images.Resolve(ctx, q); ok {
			result.ImageURL = url
		}
	}

	return result, nil
}

// LookupMeaning finds the flower associated with a meaning and an image for it.
func (s *Service) LookupMeaning(ctx context.Context, query string) (*MeaningResult, error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	entry, err := s.entry(ctx)
	if err != nil {
		return nil, err
	}

	result := &MeaningResult{
		Query:   q,
		Meaning: lookup.DisplayName(q),
	}

	flower, ok := entry.Index.Flower(q)
	if !ok {
		slog.Debug("meaning not found", "query", q)
		return result, nil
	}
	result.Found = true
	result.Flower = flower
	result.DisplayName = lookup.DisplayName(flower)

	if s.images != nil {
		if url, ok := s.images.Resolve(ctx, flower); ok {
			result.ImageURL = url
		}
	}

	return result, nil
}

// Vocabulary returns the sorted selectable labels and meanings.
func (s *Service) Vocabulary(ctx context.Context) (*Vocabulary, error) {
	entry, err := s.entry(ctx)
	if err != nil {
		return nil, err
	}
	return &Vocabulary{
		Flowers:  entry.Index.Labels(),
		Meanings: entry.Index.Meanings(),
	}, nil
}

// Status reports on the cached dataset, loading it if needed.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	entry, err := s.entry(ctx)
	if err != nil {
		return nil, err
	}
	return s.statusOf(entry), nil
}

// Export writes the resolved flower table in format ("json" or "csv").
func (s *Service) Export(ctx context.Context, format string, w io.Writer) error {
	entry, err := s.entry(ctx)
	if err != nil {
		return err
	}
	return lookup.Export(entry.Index, format, w)
}

// Invalidate drops the cached dataset so the next lookup loads it again.
func (s *Service) Invalidate() {
	s.catalog.Invalidate(s.location)
}

// Reload discards the cached dataset and loads it again.
func (s *Service) Reload(ctx context.Context) (*Status, error) {
	entry, err := s.catalog.Reload(ctx, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}
	return s.statusOf(entry), nil
}

func (s *Service) entry(ctx context.Context) (*catalog.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled before lookup: %w", err)
	}

	entry, err := s.catalog.Get(ctx, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnavailable, err)
	}
	return entry, nil
}

func (s *Service) statusOf(entry *catalog.Entry) *Status {
	cached := s.catalog.Locations()
	sort.Strings(cached)

	return &Status{
		Location:   entry.Location,
		Records:    entry.Table.Len(),
		Skipped:    entry.Table.Skipped,
		Flowers:    entry.Index.Len(),
		Meanings:   len(entry.Index.LabelByMeaning),
		Duplicates: len(entry.Index.Duplicates),
		LoadedAt:   entry.LoadedAt,
		Cached:     cached,
	}
}
