package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dayplanner/agent/tools"
)

// defaultSearchURL is the DuckDuckGo instant-answer endpoint.
const defaultSearchURL = "https://api.duckduckgo.com"

const defaultMaxResults = 5

// instantAnswer is the slice of the DuckDuckGo response the researcher
// agent cares about.
type instantAnswer struct {
	Heading       string         `json:"Heading"`
	AbstractText  string         `json:"AbstractText"`
	AbstractURL   string         `json:"AbstractURL"`
	RelatedTopics []relatedTopic `json:"RelatedTopics"`
}

type relatedTopic struct {
	Text     string `json:"Text"`
	FirstURL string `json:"FirstURL"`
}

type searchConfig struct {
	baseURL string
	client  *http.Client
}

type SearchOption func(*searchConfig)

// WithSearchURL overrides the instant-answer endpoint.
func WithSearchURL(baseURL string) SearchOption {
	return func(c *searchConfig) {
		c.baseURL = baseURL
	}
}

// WithSearchClient overrides the HTTP client used for search requests.
func WithSearchClient(client *http.Client) SearchOption {
	return func(c *searchConfig) {
		c.client = client
	}
}

func NewWebSearchTool(opts ...SearchOption) tools.Tool {
	cfg := searchConfig{
		baseURL: defaultSearchURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return tools.New(
		"web_search",
		func(ctx context.Context, args string) (string, error) {
			var input struct {
				Query      string `json:"query"`
				MaxResults int    `json:"max_results"`
			}
			if err := json.Unmarshal([]byte(args), &input); err != nil {
				return "", fmt.Errorf("parse args: %w", err)
			}
			if strings.TrimSpace(input.Query) == "" {
				return "", fmt.Errorf("query is required")
			}
			if input.MaxResults <= 0 {
				input.MaxResults = defaultMaxResults
			}
			answer, err := fetchInstantAnswer(ctx, cfg, input.Query)
			if err != nil {
				return "", err
			}
			return formatInstantAnswer(answer, input.MaxResults), nil
		},
		tools.WithDescription("Search the web for factual information, current events and definitions."),
		tools.WithParameters(tools.ObjectSchema(map[string]any{
			"query":       tools.StringProperty("The search query."),
			"max_results": tools.IntProperty("Maximum number of results to return."),
		}, "query")),
	)
}

func fetchInstantAnswer(ctx context.Context, cfg searchConfig, query string) (*instantAnswer, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_redirect", "1")
	params.Set("no_html", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := cfg.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search http status: %s", resp.Status)
	}
	var answer instantAnswer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &answer, nil
}

// formatInstantAnswer renders the answer as plain text the model can quote
// from: heading, abstract with its source, then up to maxResults topics.
func formatInstantAnswer(answer *instantAnswer, maxResults int) string {
	var b strings.Builder
	if answer.Heading != "" {
		fmt.Fprintf(&b, "Heading: %s\n", answer.Heading)
	}
	if answer.AbstractText != "" {
		if answer.AbstractURL != "" {
			fmt.Fprintf(&b, "Abstract: %s (%s)\n", answer.AbstractText, answer.AbstractURL)
		} else {
			fmt.Fprintf(&b, "Abstract: %s\n", answer.AbstractText)
		}
	}
	listed := 0
	for _, topic := range answer.RelatedTopics {
		if listed == maxResults {
			break
		}
		if topic.Text == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s (%s)\n", topic.Text, topic.FirstURL)
		listed++
	}
	if b.Len() == 0 {
		return "No instant answer found."
	}
	return strings.TrimRight(b.String(), "\n")
}
