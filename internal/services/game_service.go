package services

import (
	"context"
	"time"

	"github.com/dmatos/gamewatch/internal/errors"
	"github.com/dmatos/gamewatch/internal/logger"
	"github.com/dmatos/gamewatch/internal/metrics"
	"github.com/dmatos/gamewatch/internal/models"
	"github.com/dmatos/gamewatch/internal/query"
)

// DocProvider supplies the session's cached games document.
type DocProvider interface {
	Doc(ctx context.Context) (*models.GamesDoc, error)
}

// ListResult is the outcome of a list derivation.
type ListResult struct {
	Games    []models.Game
	Total    int  // games in the document before filtering
	FellBack bool // filters matched nothing, full sorted list returned instead
}

// GameService handles game lookup and list derivation over the loaded document.
type GameService interface {
	ListGames(ctx context.Context, f query.Filters, now time.Time) (ListResult, error)
	GetGame(ctx context.Context, id string) (*models.Game, error)
	SuggestedGames(ctx context.Context, excludeID string, limit int) ([]models.Game, error)
	AllTags(ctx context.Context) ([]string, error)
	Document(ctx context.Context) (*models.GamesDoc, error)
}

type gameService struct {
	docs DocProvider
}

// NewGameService creates a new GameService.
func NewGameService(docs DocProvider) GameService {
	return &gameService{docs: docs}
}

func (s *gameService) ListGames(ctx context.Context, f query.Filters, now time.Time) (ListResult, error) {
	log := logger.FromContext(ctx)
	doc, err := s.docs.Doc(ctx)
	if err != nil {
		return ListResult{}, errors.NewUnavailableError(err)
	}

	metrics.ListQueries.WithLabelValues(string(f.Sort)).Inc()

	games := query.Apply(doc.Games, f, now)
	result := ListResult{Games: games, Total: len(doc.Games)}

	// An active filter that matches nothing falls back to the full sorted
	// list; the view renders a "no results" notice above it.
	if len(games) == 0 && len(doc.Games) > 0 {
		log.Debug("filters matched nothing, falling back to full list")
		all := query.Apply(doc.Games, query.Filters{Status: query.StatusAll, Tag: query.TagAll, Sort: f.Sort}, now)
		result.Games = all
		result.FellBack = true
	}

	log.Debug("listing games: %d of %d shown", len(result.Games), result.Total)
	return result, nil
}

func (s *gameService) GetGame(ctx context.Context, id string) (*models.Game, error) {
	log := logger.FromContext(ctx)
	doc, err := s.docs.Doc(ctx)
	if err != nil {
		return nil, errors.NewUnavailableError(err)
	}

	game := doc.FindGame(id)
	if game == nil {
		log.Debug("game not found: %s", id)
		return nil, errors.NewNotFoundError("game", id)
	}
	return game, nil
}

func (s *gameService) SuggestedGames(ctx context.Context, excludeID string, limit int) ([]models.Game, error) {
	doc, err := s.docs.Doc(ctx)
	if err != nil {
		return nil, errors.NewUnavailableError(err)
	}

	suggested := make([]models.Game, 0, limit)
	for _, g := range doc.Games {
		if g.ID == excludeID {
			continue
		}
		suggested = append(suggested, g)
		if len(suggested) == limit {
			break
		}
	}
	return suggested, nil
}

func (s *gameService) AllTags(ctx context.Context) ([]string, error) {
	doc, err := s.docs.Doc(ctx)
	if err != nil {
		return nil, errors.NewUnavailableError(err)
	}
	return query.AllTags(doc.Games), nil
}

func (s *gameService) Document(ctx context.Context) (*models.GamesDoc, error) {
	doc, err := s.docs.Doc(ctx)
	if err != nil {
		return nil, errors.NewUnavailableError(err)
	}
	return doc, nil
}
