package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hpitta26/Leetcode-Bot/internal/config"

	"github.com/sirupsen/logrus"
)

const (
	defaultEndpoint = "https://leetcode.com/graphql"
	userAgent       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	// LeetCode only exposes a user's most recent accepted submissions;
	// this matches the window the profile page shows.
	recentWindow = 20
)

const recentAcceptedQuery = `
query recentAcSubmissions($username: String!, $limit: Int!) {
  recentAcSubmissionList(username: $username, limit: $limit) {
    titleSlug
    timestamp
  }
}`

// LeetCodeScraper fetches a user's recently accepted submissions from
// the public GraphQL API.
type LeetCodeScraper struct {
	client   *http.Client
	endpoint string
	log      *logrus.Logger
}

func New(cfg config.ScrapingConfig, log *logrus.Logger) *LeetCodeScraper {
	return &LeetCodeScraper{
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
		endpoint: defaultEndpoint,
		log:      log,
	}
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type recentAcceptedResponse struct {
	Data struct {
		RecentAcSubmissionList []struct {
			TitleSlug string `json:"titleSlug"`
			Timestamp string `json:"timestamp"`
		} `json:"recentAcSubmissionList"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// RecentlySolved returns the problem slugs the user recently solved,
// most recent first, deduplicated, capped to the API's window. Failures
// are wrapped with the username so the caller can log and move on to the
// next user.
func (s *LeetCodeScraper) RecentlySolved(ctx context.Context, username string) ([]string, error) {
	body, err := json.Marshal(graphqlRequest{
		Query: recentAcceptedQuery,
		Variables: map[string]interface{}{
			"username": username,
			"limit":    recentWindow,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", fmt.Sprintf("https://leetcode.com/u/%s/", username))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error scraping user %q: %w", username, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("error scraping user %q: unexpected status %d", username, resp.StatusCode)
	}

	var parsed recentAcceptedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error scraping user %q: %w", username, err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("error scraping user %q: %s", username, parsed.Errors[0].Message)
	}

	seen := make(map[string]bool, len(parsed.Data.RecentAcSubmissionList))
	slugs := make([]string, 0, len(parsed.Data.RecentAcSubmissionList))
	for _, sub := range parsed.Data.RecentAcSubmissionList {
		if sub.TitleSlug == "" || seen[sub.TitleSlug] {
			continue
		}
		seen[sub.TitleSlug] = true
		slugs = append(slugs, sub.TitleSlug)
	}

	s.log.WithFields(logrus.Fields{
		"username":     username,
		"recent_count": len(slugs),
	}).Debug("Fetched recent accepted submissions")

	return slugs, nil
}
