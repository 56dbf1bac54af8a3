// Package twitter implements the optional live tweet source against the
// v2 recent-search API.
package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hy461283-sudo/pulseX/internal/domain"
	"github.com/hy461283-sudo/pulseX/internal/metrics"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://api.twitter.com"
	searchPath      = "/2/tweets/search/recent"
	httpCallTimeout = 10 * time.Second

	// MaxResults is the hard cap of the recent-search endpoint.
	MaxResults = 100
	minResults = 10
)

// Client performs synchronous recent-search calls with a bearer token.
// One request per Search call; a client-side limiter keeps bursts of UI
// actions under the API quota.
type Client struct {
	bearerToken string
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a search client. The recent-search quota on the
// free tier is roughly one request every two seconds, which the
// limiter mirrors.
func NewClient(bearerToken string) *Client {
	return &Client{
		bearerToken: bearerToken,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: httpCallTimeout},
		limiter:     rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// NewClientWithBaseURL is NewClient pointed at a different host, used
// by tests.
func NewClientWithBaseURL(bearerToken, baseURL string) *Client {
	c := NewClient(bearerToken)
	c.baseURL = baseURL
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

type wireMetrics struct {
	RetweetCount int `json:"retweet_count"`
	LikeCount    int `json:"like_count"`
}

type wireTweet struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	CreatedAt     string       `json:"created_at"`
	AuthorID      string       `json:"author_id"`
	Lang          string       `json:"lang"`
	PublicMetrics *wireMetrics `json:"public_metrics"`
}

type wireUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type searchResponse struct {
	Data     []wireTweet `json:"data"`
	Includes struct {
		Users []wireUser `json:"users"`
	} `json:"includes"`
}

// Search fetches up to limit tweets matching keyword created at or
// after since. Synchronous, single request. API failures map to the
// domain sentinels: 401 is domain.ErrAuthentication, 429 is
// domain.ErrRateLimited, 403 is domain.ErrPermission.
func (c *Client) Search(ctx context.Context, keyword string, since time.Time, limit int) (domain.Dataset, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	requested := limit
	if requested > MaxResults {
		requested = MaxResults
	}
	if requested < minResults {
		requested = minResults
	}

	q := url.Values{}
	q.Set("query", keyword)
	q.Set("max_results", strconv.Itoa(requested))
	q.Set("tweet.fields", "created_at,public_metrics,lang,author_id")
	q.Set("expansions", "author_id")
	q.Set("user.fields", "username,name")
	if !since.IsZero() {
		q.Set("start_time", since.UTC().Format(time.RFC3339))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.LiveSearchRequestsTotal.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.LiveSearchRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, fmt.Errorf("%w: status %d", domain.ErrAuthentication, resp.StatusCode)
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("%w: status %d", domain.ErrRateLimited, resp.StatusCode)
		case http.StatusForbidden:
			return nil, fmt.Errorf("%w: status %d", domain.ErrPermission, resp.StatusCode)
		default:
			return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
		}
	}
	metrics.LiveSearchRequestsTotal.WithLabelValues("ok").Inc()

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	ds := toDataset(parsed)
	if limit > 0 && len(ds) > limit {
		ds = ds[:limit]
	}
	return ds, nil
}

// toDataset joins tweets with their expanded author objects and maps
// them to the domain type.
func toDataset(resp searchResponse) domain.Dataset {
	users := make(map[string]wireUser, len(resp.Includes.Users))
	for _, u := range resp.Includes.Users {
		users[u.ID] = u
	}

	ds := make(domain.Dataset, 0, len(resp.Data))
	for _, w := range resp.Data {
		t := domain.Tweet{
			ID:   parseID(w.ID),
			Text: w.Text,
			Lang: w.Lang,
		}
		if t.Lang == "" {
			t.Lang = "en"
		}

		if ts, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
			t.CreatedAt = ts.UTC()
		}

		if w.PublicMetrics != nil {
			t.RetweetCount = w.PublicMetrics.RetweetCount
			t.FavoriteCount = w.PublicMetrics.LikeCount
		}

		t.AuthorID = parseID(w.AuthorID)
		if u, ok := users[w.AuthorID]; ok {
			t.AuthorHandle = u.Username
			t.AuthorName = u.Name
		} else {
			t.AuthorHandle = "unknown"
			t.AuthorName = "Unknown"
		}

		ds = append(ds, t)
	}
	return ds
}

func parseID(s string) int64 {
	id, _ := strconv.ParseInt(s, 10, 64)
	return id
}
