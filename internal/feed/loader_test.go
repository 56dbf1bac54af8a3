package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hy461283-sudo/pulseX/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = `{"id":1000000000000000001,"created_at":"Wed Jan 15 10:30:00 +0000 2025","text":"This is great! #google","user":{"id":123456,"screen_name":"user1","name":"Test User 1"},"retweet_count":12,"favorite_count":34,"lang":"en"}`

func TestParse_SingleRecord(t *testing.T) {
	result, err := Parse(strings.NewReader(sampleLine+"\n"), PolicyAbort)
	require.NoError(t, err)
	require.Len(t, result.Dataset, 1)

	tw := result.Dataset[0]
	assert.Equal(t, int64(1000000000000000001), tw.ID)
	assert.Equal(t, "This is great! #google", tw.Text)
	assert.Equal(t, "user1", tw.AuthorHandle)
	assert.Equal(t, "Test User 1", tw.AuthorName)
	assert.Equal(t, int64(123456), tw.AuthorID)
	assert.Equal(t, 12, tw.RetweetCount)
	assert.Equal(t, 34, tw.FavoriteCount)
	assert.Equal(t, "en", tw.Lang)
	assert.Equal(t, time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC), tw.CreatedAt)
}

func TestParse_SkipsBlankLines(t *testing.T) {
	input := "\n" + sampleLine + "\n\n   \n" + sampleLine + "\n"

	result, err := Parse(strings.NewReader(input), PolicyAbort)
	require.NoError(t, err)
	assert.Len(t, result.Dataset, 2)
	assert.Equal(t, 2, result.Lines)
}

func TestParse_MalformedAbort(t *testing.T) {
	input := sampleLine + "\n{not json}\n"

	_, err := Parse(strings.NewReader(input), PolicyAbort)
	require.Error(t, err)

	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Line)
}

func TestParse_MalformedSkip(t *testing.T) {
	input := sampleLine + "\n{not json}\n" + sampleLine + "\n"

	result, err := Parse(strings.NewReader(input), PolicySkip)
	require.NoError(t, err)
	assert.Len(t, result.Dataset, 2)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 3, result.Lines)
}

func TestParse_Defaults(t *testing.T) {
	input := `{"id":7,"created_at":"","text":""}` + "\n"

	result, err := Parse(strings.NewReader(input), PolicyAbort)
	require.NoError(t, err)
	require.Len(t, result.Dataset, 1)

	tw := result.Dataset[0]
	assert.True(t, tw.CreatedAt.IsZero(), "missing timestamp becomes the sentinel")
	assert.Equal(t, "", tw.Text)
	assert.Equal(t, "unknown", tw.AuthorHandle)
	assert.Equal(t, "en", tw.Lang)
	assert.Equal(t, 0, tw.RetweetCount)
	assert.Equal(t, 0, tw.FavoriteCount)
}

func TestParse_UnparseableTimestampSentinel(t *testing.T) {
	input := `{"id":8,"created_at":"yesterday at noon","text":"hi"}` + "\n"

	result, err := Parse(strings.NewReader(input), PolicyAbort)
	require.NoError(t, err)
	assert.True(t, result.Dataset[0].CreatedAt.IsZero())
}

func TestParse_RFC3339Timestamp(t *testing.T) {
	input := `{"id":9,"created_at":"2025-01-15T10:30:00Z","text":"stream capture"}` + "\n"

	result, err := Parse(strings.NewReader(input), PolicyAbort)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC), result.Dataset[0].CreatedAt)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "tweets.json"), PolicyAbort)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tweets.json")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o644))

	_, err := Load(path, PolicyAbort)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}
