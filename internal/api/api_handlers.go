package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/dmatos/gamewatch/internal/logger"
	"github.com/dmatos/gamewatch/internal/models"
	"github.com/dmatos/gamewatch/internal/release"
)

// apiGame pairs a game with its derived temporal values at server "now".
type apiGame struct {
	Game      models.Game    `json:"game"`
	Status    models.Status  `json:"status"`
	Label     string         `json:"label"`
	SortValue *int64         `json:"sortValue"`
	TargetMs  *int64         `json:"targetMs"`
	MsLeft    *int64         `json:"msLeft"`
	Countdown *release.Parts `json:"countdown,omitempty"`
}

func buildAPIGame(g models.Game, now time.Time) apiGame {
	out := apiGame{
		Game:   g,
		Status: g.Release.Status(),
		Label:  release.Label(g.Release),
	}
	if target, ok := release.TargetInstant(g.Release, now); ok {
		targetMs := target.UnixMilli()
		sortValue := targetMs
		out.TargetMs = &targetMs
		out.SortValue = &sortValue
	}
	if remaining, ok := release.TimeRemaining(g.Release, now); ok {
		msLeft := remaining.Milliseconds()
		out.MsLeft = &msLeft
		if msLeft > 0 {
			parts := release.Split(remaining)
			out.Countdown = &parts
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleAPIGames(w http.ResponseWriter, r *http.Request) {
	f := filtersFromQuery(r)
	now := time.Now().UTC()

	result, err := s.Games.ListGames(r.Context(), f, now)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	doc, err := s.Games.Document(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	games := make([]apiGame, 0, len(result.Games))
	for _, g := range result.Games {
		games = append(games, buildAPIGame(g, now))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"now":           now.UnixMilli(),
		"generatedAt":   doc.GeneratedAt,
		"asOf":          doc.AsOf,
		"schemaVersion": doc.SchemaVersion,
		"total":         result.Total,
		"shown":         len(games),
		"fellBack":      result.FellBack,
		"games":         games,
	})
}

func (s *Server) handleAPIGameDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	game, err := s.Games.GetGame(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	now := time.Now().UTC()
	writeJSON(w, http.StatusOK, map[string]any{
		"now":  now.UnixMilli(),
		"item": buildAPIGame(*game, now),
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Games.Document(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warn("health check degraded: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "degraded",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"games":  len(doc.Games),
	})
}
