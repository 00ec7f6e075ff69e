package imagehost

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v77/github"
)

const rawGitHubHost = "raw.githubusercontent.com"

// GitHubProber answers existence checks for raw.githubusercontent.com URLs with
// a HEAD request against the repository contents API, so no file body is fetched.
type GitHubProber struct {
	client  *github.Client
	timeout time.Duration
}

// NewGitHubClient creates a GitHub API client, authenticated when token is set.
func NewGitHubClient(token string) *github.Client {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return client
}

// NewGitHubProber wraps client. A zero timeout leaves the context untouched.
func NewGitHubProber(client *github.Client, timeout time.Duration) *GitHubProber {
	return &GitHubProber{client: client, timeout: timeout}
}

// RawLocation is a file addressed through raw.githubusercontent.com.
type RawLocation struct {
	Owner string
	Repo  string
	Ref   string
	Path  string
}

// ParseRawURL splits a raw.githubusercontent.com URL into owner, repo, ref and path.
func ParseRawURL(raw string) (RawLocation, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return RawLocation{}, fmt.Errorf("parse image URL: %w", err)
	}
	if u.Host != rawGitHubHost {
		return RawLocation{}, fmt.Errorf("not a %s URL: %s", rawGitHubHost, raw)
	}

	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 4)
	if len(parts) < 4 || parts[3] == "" {
		return RawLocation{}, fmt.Errorf("incomplete %s URL: %s", rawGitHubHost, raw)
	}

	return RawLocation{Owner: parts[0], Repo: parts[1], Ref: parts[2], Path: parts[3]}, nil
}

// Exists reports whether the file behind rawURL is present in the repository.
func (p *GitHubProber) Exists(ctx context.Context, rawURL string) (bool, error) {
	loc, err := ParseRawURL(rawURL)
	if err != nil {
		return false, err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := p.client.NewRequest(http.MethodHead, contentsURL(loc), nil)
	if err != nil {
		return false, fmt.Errorf("failed to build contents request: %w", err)
	}

	resp, err := p.client.Do(ctx, req, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check contents: %w", err)
	}

	return resp.StatusCode == http.StatusOK, nil
}

// contentsURL is the contents API path for loc, relative to the client base URL.
func contentsURL(loc RawLocation) string {
	path := (&url.URL{Path: loc.Path}).EscapedPath()
	return fmt.Sprintf("repos/%s/%s/contents/%s?ref=%s",
		url.PathEscape(loc.Owner), url.PathEscape(loc.Repo), path, url.QueryEscape(loc.Ref))
}
