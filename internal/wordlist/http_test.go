package wordlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/050324.json":
			w.Write([]byte(`[{"id":"a","correctWord":"Ebb","meaning":"recede","synonyms":["wane"]}]`))
		case "/060324.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, srv.Client())

	t.Run("ok", func(t *testing.T) {
		entries, err := src.Fetch(context.Background(), "050324")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Ebb", entries[0].CorrectWord)
		assert.Equal(t, []string{"wane"}, entries[0].Synonyms)
	})

	t.Run("missing date maps to ErrNotFound", func(t *testing.T) {
		_, err := src.Fetch(context.Background(), "040324")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("server error is not ErrNotFound", func(t *testing.T) {
		_, err := src.Fetch(context.Background(), "060324")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestDirSourceFetch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/050324.json", `[{"id":"a","correctWord":"Ebb","meaning":"recede","synonyms":[]}]`)
	writeFile(t, dir+"/070324.json", `{not json`)

	src := NewDirSource(dir)

	entries, err := src.Fetch(context.Background(), "050324")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)

	_, err = src.Fetch(context.Background(), "060324")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = src.Fetch(context.Background(), "070324")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
