package sentiment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// DefaultLexiconURL is the canonical published VADER lexicon.
const DefaultLexiconURL = "https://raw.githubusercontent.com/cjhutto/vaderSentiment/master/vaderSentiment/vader_lexicon.txt"

// FetchLexicon downloads the lexicon at url to path. Idempotent: if a
// non-empty file already exists at path, nothing is downloaded and
// fetched is false. The download goes through a temp file and rename so
// a failed transfer never leaves a truncated lexicon behind.
func FetchLexicon(ctx context.Context, client *http.Client, url, path string) (fetched bool, err error) {
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create lexicon request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to download lexicon: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("lexicon download returned status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".lexicon-*")
	if err != nil {
		return false, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return false, fmt.Errorf("failed to write lexicon: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("failed to close temp file: %w", err)
	}

	// Validate before putting the file in place.
	if _, err := LoadLexiconFile(tmp.Name()); err != nil {
		return false, fmt.Errorf("downloaded lexicon is unusable: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, fmt.Errorf("failed to move lexicon into place: %w", err)
	}

	return true, nil
}
