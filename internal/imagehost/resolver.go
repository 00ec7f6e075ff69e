// Package imagehost finds a picture for a flower label on a static image host.
// File names follow the image repository's "Flower_color.jpg" layout, and a
// candidate URL is only returned after a metadata-only existence probe succeeds.
package imagehost

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultBaseURL is where the flower pictures live.
const DefaultBaseURL = "https://raw.githubusercontent.com/ImrulNYC/flower-power/main/data/Flower_images/"

// Prober checks whether a URL points at an existing resource.
type Prober interface {
	Exists(ctx context.Context, url string) (bool, error)
}

// Resolver maps flower labels to image URLs.
type Resolver struct {
	baseURL string
	prober  Prober
}

// NewResolver creates a Resolver rooted at baseURL. An empty baseURL uses DefaultBaseURL.
func NewResolver(baseURL string, prober Prober) *Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Resolver{baseURL: baseURL, prober: prober}
}

// FormatName turns a label into the image file stem. A single word is
// capitalized; otherwise the second word, capitalized, is joined to the first,
// lower-cased, with an underscore. Words after the second are ignored.
func FormatName(label string) string {
	words := strings.Fields(label)
	switch len(words) {
	case 0:
		return ""
	case 1:
		return capitalize(words[0])
	default:
		return capitalize(words[1]) + "_" + strings.ToLower(words[0])
	}
}

// URL returns the candidate image URL for label without probing it.
func (r *Resolver) URL(label string) string {
	name := FormatName(label)
	if name == "" {
		return ""
	}
	return r.baseURL + name + ".jpg"
}

// Resolve returns the image URL for label if the host confirms it exists.
// Probe failures of any kind count as "no image".
func (r *Resolver) Resolve(ctx context.Context, label string) (string, bool) {
	url := r.URL(label)
	if url == "" || r.prober == nil {
		return "", false
	}

	ok, err := r.prober.Exists(ctx, url)
	if err != nil {
		slog.Debug("image probe failed", "label", label, "url", url, "error", err)
		return "", false
	}
	if !ok {
		slog.Debug("image not found", "label", label, "url", url)
		return "", false
	}
	return url, true
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
