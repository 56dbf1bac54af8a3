package twitter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hy461283-sudo/pulseX/internal/domain"
)

const (
	streamPath      = "/2/tweets/search/stream"
	streamRulesPath = "/2/tweets/search/stream/rules"
)

type streamRule struct {
	Value string `json:"value"`
	Tag   string `json:"tag,omitempty"`
	ID    string `json:"id,omitempty"`
}

type rulesResponse struct {
	Data []streamRule `json:"data"`
}

// ReplaceRules deletes all existing stream rules and installs a single
// rule matching keyword. Rules persist server-side across connections,
// so a clean slate keeps repeated captures predictable.
func (c *Client) ReplaceRules(ctx context.Context, keyword string) error {
	existing, err := c.fetchRules(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		ids := make([]string, 0, len(existing))
		for _, r := range existing {
			ids = append(ids, r.ID)
		}
		payload := map[string]any{"delete": map[string]any{"ids": ids}}
		if err := c.postRules(ctx, payload); err != nil {
			return fmt.Errorf("failed to delete stream rules: %w", err)
		}
	}

	payload := map[string]any{
		"add": []streamRule{{Value: keyword, Tag: "capture"}},
	}
	if err := c.postRules(ctx, payload); err != nil {
		return fmt.Errorf("failed to add stream rule: %w", err)
	}
	return nil
}

func (c *Client) fetchRules(ctx context.Context) ([]streamRule, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+streamRulesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rules request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rules request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var parsed rulesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode rules response: %w", err)
	}
	return parsed.Data, nil
}

func (c *Client) postRules(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode rules payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+streamRulesPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create rules request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rules request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return checkStatus(resp.StatusCode)
	}
	return nil
}

type streamEnvelope struct {
	Data     wireTweet `json:"data"`
	Includes struct {
		Users []wireUser `json:"users"`
	} `json:"includes"`
}

// Stream connects to the filtered stream and invokes handle for each
// tweet until ctx is cancelled, the server closes the connection, or
// handle returns false. The long-lived request bypasses the search
// client's per-call timeout.
func (c *Client) Stream(ctx context.Context, handle func(domain.Tweet) bool) error {
	u := c.baseURL + streamPath +
		"?tweet.fields=created_at,public_metrics,lang,author_id" +
		"&expansions=author_id&user.fields=username,name"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create stream request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	client := &http.Client{Transport: c.httpClient.Transport}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("stream request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			// Keep-alive heartbeat
			continue
		}

		var env streamEnvelope
		if err := json.Unmarshal(line, &env); err != nil {
			continue
		}
		if env.Data.ID == "" {
			continue
		}

		resp := searchResponse{Data: []wireTweet{env.Data}}
		resp.Includes.Users = env.Includes.Users
		ds := toDataset(resp)
		if len(ds) == 0 {
			continue
		}

		if !handle(ds[0]) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stream read failed: %w", err)
	}
	return nil
}

func checkStatus(code int) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: status %d", domain.ErrAuthentication, code)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", domain.ErrRateLimited, code)
	case http.StatusForbidden:
		return fmt.Errorf("%w: status %d", domain.ErrPermission, code)
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
