package docstore_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmatos/gamewatch/internal/docstore"
	"github.com/dmatos/gamewatch/internal/models"
)

const validDoc = `{
	"generatedAt": "2025-01-01T00:00:00Z",
	"schemaVersion": "1.0.0",
	"games": [
		{
			"id": "gta6",
			"name": "Grand Theft Auto VI",
			"category": {"type": "full_game"},
			"platforms": ["ps5"],
			"release": {
				"status": "announced_date",
				"isOfficial": true,
				"confidence": "confirmed",
				"dateISO": "2026-05-26"
			},
			"sources": []
		}
	]
}`

func writeTempDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Valid(t *testing.T) {
	loader := docstore.FileLoader{Path: writeTempDoc(t, validDoc)}

	doc, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Games, 1)
	assert.Equal(t, "gta6", doc.Games[0].ID)
	assert.Equal(t, models.StatusAnnouncedDate, doc.Games[0].Release.Status())
}

func TestFileLoader_MissingFile(t *testing.T) {
	loader := docstore.FileLoader{Path: filepath.Join(t.TempDir(), "nope.json")}

	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

func TestFileLoader_MalformedJSON(t *testing.T) {
	loader := docstore.FileLoader{Path: writeTempDoc(t, `{"games": [`)}

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode document")
}

func TestFileLoader_ContractViolation(t *testing.T) {
	// A released entry without a date must be rejected at load time, not
	// tolerated downstream.
	bad := `{
		"generatedAt": "2025-01-01T00:00:00Z",
		"schemaVersion": "1.0.0",
		"games": [{
			"id": "x",
			"name": "X",
			"category": {"type": "full_game"},
			"platforms": [],
			"release": {"status": "released", "isOfficial": true, "confidence": "confirmed"},
			"sources": []
		}]
	}`
	loader := docstore.FileLoader{Path: writeTempDoc(t, bad)}

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate document")
}

func TestHTTPLoader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validDoc))
	}))
	defer srv.Close()

	loader := docstore.NewHTTPLoader(srv.URL)
	doc, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.Games, 1)
}

func TestHTTPLoader_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	loader := docstore.NewHTTPLoader(srv.URL)
	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

// countingLoader records how many loads were attempted.
type countingLoader struct {
	calls int
	doc   *models.GamesDoc
	err   error
}

func (l *countingLoader) Load(ctx context.Context) (*models.GamesDoc, error) {
	l.calls++
	return l.doc, l.err
}

func TestStore_LoadsOnce(t *testing.T) {
	loader := &countingLoader{doc: &models.GamesDoc{SchemaVersion: "1.0.0"}}
	store := docstore.NewStore(loader)

	for i := 0; i < 3; i++ {
		doc, err := store.Doc(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", doc.SchemaVersion)
	}
	assert.Equal(t, 1, loader.calls, "the document is loaded once per session")
	assert.True(t, store.Healthy())
}

func TestStore_ErrorIsTerminal(t *testing.T) {
	loader := &countingLoader{err: errors.New("network down")}
	store := docstore.NewStore(loader)

	_, err1 := store.Doc(context.Background())
	_, err2 := store.Doc(context.Background())

	require.Error(t, err1)
	require.Error(t, err2)
	assert.Equal(t, 1, loader.calls, "no automatic retries")
	assert.False(t, store.Healthy())
}
