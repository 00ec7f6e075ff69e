package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/storage/memory"
)

// GitLocation points at a dataset file inside a git repository.
type GitLocation struct {
	URL  string
	Path string
}

// ParseGitLocation splits "<repo-url>#<path/in/repo>" into its parts.
// ok is false for plain filesystem paths.
func ParseGitLocation(location string) (GitLocation, bool) {
	url, path, found := strings.Cut(location, "#")
	if !found || url == "" || path == "" {
		return GitLocation{}, false
	}
	if !looksLikeRemote(url) {
		return GitLocation{}, false
	}
	return GitLocation{URL: url, Path: strings.TrimPrefix(path, "/")}, true
}

func (l GitLocation) String() string {
	return l.URL + "#" + l.Path
}

func looksLikeRemote(url string) bool {
	return strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "http://") ||
		strings.HasPrefix(url, "git@") ||
		strings.HasPrefix(url, "file://") ||
		strings.HasSuffix(url, ".git")
}

// LoadFromGit clones the repository into memory and parses the file at loc.Path
// from the HEAD commit.
func LoadFromGit(ctx context.Context, loc GitLocation) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled before clone: %w", err)
	}

	repo, err := git.Clone(memory.NewStorage(), nil, &git.CloneOptions{
		URL:   loc.URL,
		Depth: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clone dataset repository '%s': %w", loc.URL, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree: %w", err)
	}

	file, err := tree.File(loc.Path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, loc)
		}
		return nil, fmt.Errorf("failed to read %s: %w", loc.Path, err)
	}

	r, err := file.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", loc.Path, err)
	}
	defer r.Close()

	comma := ','
	if strings.EqualFold(filepath.Ext(loc.Path), ".tsv") {
		comma = '\t'
	}
	return ParseDelimited(r, comma)
}
