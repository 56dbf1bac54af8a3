package sentiment

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hy461283-sudo/pulseX/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLexicon(t *testing.T) {
	input := "love\t3.2\t0.5\t[3,3,4]\n" +
		"\n" +
		"bad entry without tab\n" +
		"multi word\t1.0\n" +
		"notanumber\tNaNaNa\n" +
		"hate\t-2.7\n"

	lex, err := ParseLexicon(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, lex, 2)
	assert.Equal(t, 3.2, lex["love"])
	assert.Equal(t, -2.7, lex["hate"])
}

func TestParseLexicon_Empty(t *testing.T) {
	_, err := ParseLexicon(strings.NewReader("junk line\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable entries")
}

func TestLoadLexiconFile_Missing(t *testing.T) {
	_, err := LoadLexiconFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLexiconMissing)
	assert.Contains(t, err.Error(), "fetch-lexicon")
}

func TestLoadLexiconFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.txt")
	require.NoError(t, os.WriteFile(path, []byte(testLexicon), 0o644))

	lex, err := LoadLexiconFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3.2, lex["love"])
}

func TestFetchLexicon(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testLexicon))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "vader_lexicon.txt")

	fetched, err := FetchLexicon(t.Context(), srv.Client(), srv.URL, path)
	require.NoError(t, err)
	assert.True(t, fetched)

	lex, err := LoadLexiconFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, lex)

	// Second run is a no-op.
	fetched, err = FetchLexicon(t.Context(), srv.Client(), srv.URL, path)
	require.NoError(t, err)
	assert.False(t, fetched)
}

func TestFetchLexicon_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "vader_lexicon.txt")

	_, err := FetchLexicon(t.Context(), srv.Client(), srv.URL, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "failed download must not leave a file behind")
}
