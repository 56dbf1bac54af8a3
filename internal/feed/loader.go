package feed

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hy461283-sudo/pulseX/internal/domain"
	"github.com/hy461283-sudo/pulseX/internal/metrics"
)

// Policy decides what happens when a line fails to decode.
type Policy string

const (
	// PolicyAbort fails the whole load on the first malformed line.
	// Default: partial silent data loss is worse than a failed load.
	PolicyAbort Policy = "abort"
	// PolicySkip drops malformed lines, counting and logging them.
	PolicySkip Policy = "skip"
)

// MalformedRecordError reports a line that failed to decode under PolicyAbort.
type MalformedRecordError struct {
	Line int
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// Result is one completed load.
type Result struct {
	Dataset domain.Dataset
	Lines   int // non-blank lines read
	Skipped int // malformed lines dropped (PolicySkip only)
}

// wireUser is the nested author object of the file format.
type wireUser struct {
	ID         int64  `json:"id"`
	ScreenName string `json:"screen_name"`
	Name       string `json:"name"`
}

// wireTweet is one line of the file format.
type wireTweet struct {
	ID            int64     `json:"id"`
	CreatedAt     string    `json:"created_at"`
	Text          string    `json:"text"`
	User          *wireUser `json:"user,omitempty"`
	RetweetCount  int       `json:"retweet_count"`
	FavoriteCount int       `json:"favorite_count"`
	Lang          string    `json:"lang,omitempty"`
}

// Load reads the tweet file at path. A missing or empty file maps to
// domain.ErrDataUnavailable; callers render the run-the-generator
// guidance instead of failing the process.
func Load(path string, policy Policy) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s not found", domain.ErrDataUnavailable, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	result, err := Parse(f, policy)
	if err != nil {
		return nil, err
	}
	if len(result.Dataset) == 0 {
		return nil, fmt.Errorf("%w: %s holds no records", domain.ErrDataUnavailable, path)
	}
	return result, nil
}

// Parse decodes line-delimited JSON tweets from r. Blank lines are
// skipped; malformed lines follow the policy.
func Parse(r io.Reader, policy Policy) (*Result, error) {
	result := &Result{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result.Lines++

		var wire wireTweet
		if err := json.Unmarshal([]byte(line), &wire); err != nil {
			if policy == PolicyAbort {
				return nil, &MalformedRecordError{Line: lineNo, Err: err}
			}
			result.Skipped++
			metrics.MalformedLinesTotal.Inc()
			slog.Warn("Skipping malformed record", "line", lineNo, "error", err)
			continue
		}

		result.Dataset = append(result.Dataset, normalize(wire))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tweet file: %w", err)
	}

	if result.Skipped > 0 {
		slog.Warn("Load completed with malformed records skipped", "skipped", result.Skipped, "loaded", len(result.Dataset))
	}

	return result, nil
}

// normalize flattens a wire record into the domain type, defaulting
// absent fields and coercing bad timestamps to the zero-time sentinel.
func normalize(wire wireTweet) domain.Tweet {
	t := domain.Tweet{
		ID:            wire.ID,
		Text:          wire.Text,
		RetweetCount:  wire.RetweetCount,
		FavoriteCount: wire.FavoriteCount,
		Lang:          wire.Lang,
	}

	if t.Lang == "" {
		t.Lang = "en"
	}
	if t.RetweetCount < 0 {
		t.RetweetCount = 0
	}
	if t.FavoriteCount < 0 {
		t.FavoriteCount = 0
	}

	if wire.User != nil {
		t.AuthorID = wire.User.ID
		t.AuthorHandle = wire.User.ScreenName
		t.AuthorName = wire.User.Name
	}
	if t.AuthorHandle == "" {
		t.AuthorHandle = "unknown"
	}

	t.CreatedAt = parseCreatedAt(wire.CreatedAt)
	return t
}

// parseCreatedAt tries the classic Twitter layout, then RFC3339 as
// found in v2 API exports. Anything else becomes the zero-time
// sentinel rather than an error.
func parseCreatedAt(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(domain.CreatedAtLayout, s); err == nil {
		return ts.UTC()
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC()
	}
	slog.Warn("Unparseable created_at, treating as unknown time", "created_at", s)
	return time.Time{}
}
