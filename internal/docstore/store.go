// Package docstore loads the games document once per process and caches the
// outcome, good or bad, for the rest of the session.
package docstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/dmatos/gamewatch/internal/logger"
	"github.com/dmatos/gamewatch/internal/metrics"
	"github.com/dmatos/gamewatch/internal/models"
)

// Loader fetches and decodes a raw games document.
type Loader interface {
	Load(ctx context.Context) (*models.GamesDoc, error)
}

// FileLoader reads the document from the local filesystem.
type FileLoader struct {
	Path string
}

func (l FileLoader) Load(ctx context.Context) (*models.GamesDoc, error) {
	log := logger.FromContext(ctx).WithPrefix("docstore")
	log.Debug("reading document from %s", l.Path)

	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return decode(data)
}

// HTTPLoader fetches the document from a URL.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

// NewHTTPLoader creates an HTTPLoader with a sane timeout.
func NewHTTPLoader(url string) *HTTPLoader {
	return &HTTPLoader{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (l *HTTPLoader) Load(ctx context.Context) (*models.GamesDoc, error) {
	log := logger.FromContext(ctx).WithPrefix("docstore")
	log.Debug("fetching document from %s", l.URL)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	log.Debug("document response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("document status %d: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read document body: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (*models.GamesDoc, error) {
	var doc models.GamesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}
	return &doc, nil
}

// Store caches the document for the session. The first Doc call performs the
// load; every later call returns the same document or the same terminal
// error. There is no retry path, reloading means restarting the process.
type Store struct {
	loader Loader
	once   sync.Once
	doc    *models.GamesDoc
	err    error
}

// NewStore creates a Store backed by the given loader.
func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Doc returns the cached document, loading it on first use.
func (s *Store) Doc(ctx context.Context) (*models.GamesDoc, error) {
	s.once.Do(func() {
		log := logger.FromContext(ctx).WithPrefix("docstore")
		start := time.Now()
		s.doc, s.err = s.loader.Load(ctx)
		if s.err != nil {
			log.Error("document load failed: %v", s.err)
			metrics.DocumentLoads.WithLabelValues("error").Inc()
			return
		}
		log.Info("document loaded in %v: %d games, schema %s",
			time.Since(start), len(s.doc.Games), s.doc.SchemaVersion)
		metrics.DocumentLoads.WithLabelValues("ok").Inc()
		metrics.DocumentGames.Set(float64(len(s.doc.Games)))
	})
	return s.doc, s.err
}

// Healthy reports whether a document is loaded, without triggering a load.
func (s *Store) Healthy() bool {
	return s.doc != nil && s.err == nil
}
