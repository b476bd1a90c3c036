package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const defaultRawBaseURL = "https://raw.githubusercontent.com"

// templatesDir is the directory inside the content repository holding the
// profile template and its assets.
const templatesDir = "templates"

// GitHubSource fetches content from a GitHub repository's raw endpoint.
// A bearer token makes private repositories reachable.
type GitHubSource struct {
	baseURL string
	owner   string
	repo    string
	branch  string
	token   string
	client  *http.Client
}

// NewGitHubSource constructs a GitHubSource. A nil client falls back to
// http.DefaultClient; baseURL overrides exist for tests.
func NewGitHubSource(owner, repo, branch, token string, client *http.Client) *GitHubSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &GitHubSource{
		baseURL: defaultRawBaseURL,
		owner:   owner,
		repo:    repo,
		branch:  branch,
		token:   token,
		client:  client,
	}
}

func (s *GitHubSource) Get(ctx context.Context, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s/%s", s.baseURL, s.owner, s.repo, s.branch, templatesDir, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "cardlink")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content fetch failed: %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content fetch failed: %s: status %d", name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("content fetch failed: %s: %w", name, err)
	}
	return body, nil
}
