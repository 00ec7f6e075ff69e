package orchestrator

import (
	"github.com/Yates-Labs/floriography/internal/lookup"
)

// NoneOption is the placeholder entry at the top of both selection lists.
const NoneOption = "None"

// normalizeQuery lower-cases and trims a user selection. The placeholder and
// blank input mean nothing was picked.
func normalizeQuery(query string) (string, error) {
	q := lookup.Normalize(query)
	if q == "" || q == lookup.Normalize(NoneOption) {
		return "", ErrNoSelection
	}
	return q, nil
}

// IsSelection reports whether query picks an actual entry rather than the
// placeholder or nothing.
func IsSelection(query string) bool {
	_, err := normalizeQuery(query)
	return err == nil
}
