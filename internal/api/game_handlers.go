package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmatos/gamewatch/internal/logger"
	"github.com/dmatos/gamewatch/internal/models"
	"github.com/dmatos/gamewatch/internal/query"
	"github.com/dmatos/gamewatch/internal/release"
)

// gameCard is the list-page view of a game.
type gameCard struct {
	ID           string
	Name         string
	Tags         []string
	Platforms    []models.Platform
	Category     models.Category
	CoverURL     string
	StatusText   string
	HasCountdown bool
	Released     bool
	TargetMs     int64
	MsLeft       int64
}

func buildCard(g models.Game, now time.Time) gameCard {
	card := gameCard{
		ID:         g.ID,
		Name:       g.Name,
		Tags:       g.Tags,
		Platforms:  g.Platforms,
		Category:   g.Category,
		CoverURL:   pickCoverURL(g),
		StatusText: release.Label(g.Release),
	}
	if remaining, ok := release.TimeRemaining(g.Release, now); ok {
		card.MsLeft = remaining.Milliseconds()
		card.Released = remaining <= 0
		if target, ok := release.TargetInstant(g.Release, now); ok {
			card.TargetMs = target.UnixMilli()
		}
	}
	card.HasCountdown = release.HasCountdown(g.Release) && card.MsLeft > 0
	return card
}

func filtersFromQuery(r *http.Request) query.Filters {
	q := r.URL.Query()
	tag := q.Get("tag")
	if tag == "" {
		tag = query.TagAll
	}
	return query.Filters{
		Query:  strings.TrimSpace(q.Get("q")),
		Status: query.ParseStatusFilter(q.Get("status")),
		Tag:    tag,
		Sort:   query.ParseSortKey(q.Get("sort")),
	}
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	f := filtersFromQuery(r)

	log = log.WithFields(map[string]any{
		"query":  f.Query,
		"status": f.Status,
		"tag":    f.Tag,
		"sort":   f.Sort,
	})
	log.Debug("listing games with filters")

	now := time.Now().UTC()
	result, err := s.Games.ListGames(r.Context(), f, now)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	tags, err := s.Games.AllTags(r.Context())
	if err != nil {
		log.Warn("failed to collect tags: %v", err)
	}

	cards := make([]gameCard, 0, len(result.Games))
	for _, g := range result.Games {
		cards = append(cards, buildCard(g, now))
	}

	log.Debug("rendering %d of %d games", len(cards), result.Total)
	s.render(w, r, "pages/games.html", pageData{
		"cards":     cards,
		"filters":   f,
		"tags":      tags,
		"statuses":  models.Statuses,
		"fell_back": result.FellBack,
		"shown":     len(cards),
		"total":     result.Total,
		"now_ms":    now.UnixMilli(),
	})
}

func (s *Server) handleGameDetail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	log = log.WithField("game_id", id)
	log.Debug("fetching game detail")

	game, err := s.Games.GetGame(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	now := time.Now().UTC()
	var (
		msLeft   int64
		targetMs int64
		parts    release.Parts
	)
	remaining, hasDeadline := release.TimeRemaining(game.Release, now)
	if hasDeadline {
		msLeft = remaining.Milliseconds()
		if target, ok := release.TargetInstant(game.Release, now); ok {
			targetMs = target.UnixMilli()
		}
		if msLeft > 0 {
			parts = release.Split(remaining)
		}
	}

	suggested, err := s.Games.SuggestedGames(r.Context(), id, s.SuggestedLimit)
	if err != nil {
		log.Warn("failed to pick suggested games: %v", err)
	}
	suggestedCards := make([]gameCard, 0, len(suggested))
	for _, g := range suggested {
		suggestedCards = append(suggestedCards, buildCard(g, now))
	}

	doc, err := s.Games.Document(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	status := game.Release.Status()
	recurring := status == models.StatusRecurringDaily || status == models.StatusRecurringWeekly

	sources := pickSources(*game)
	s.render(w, r, "pages/game_detail.html", pageData{
		"game":          game,
		"status":        status,
		"status_text":   release.Label(game.Release),
		"has_countdown": release.HasCountdown(game.Release),
		"has_deadline":  hasDeadline,
		"released":      hasDeadline && msLeft <= 0,
		"recurring":     recurring,
		"ms_left":       msLeft,
		"target_ms":     targetMs,
		"parts":         parts,
		"cover_url":     pickCoverURL(*game),
		"trailers":      pickTrailers(*game),
		"sources":       sources,
		"top_sources":   pickTopSources(sources, 4),
		"suggested":     suggestedCards,
		"generated_at":  doc.GeneratedAt,
	})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "pages/about.html", nil)
}
