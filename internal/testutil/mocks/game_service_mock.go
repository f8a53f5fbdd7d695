package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmatos/gamewatch/internal/models"
	"github.com/dmatos/gamewatch/internal/query"
	"github.com/dmatos/gamewatch/internal/services"
)

// MockGameService is a mock implementation of services.GameService
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) ListGames(ctx context.Context, f query.Filters, now time.Time) (services.ListResult, error) {
	args := m.Called(ctx, f, now)
	return args.Get(0).(services.ListResult), args.Error(1)
}

func (m *MockGameService) GetGame(ctx context.Context, id string) (*models.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameService) SuggestedGames(ctx context.Context, excludeID string, limit int) ([]models.Game, error) {
	args := m.Called(ctx, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameService) AllTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGameService) Document(ctx context.Context) (*models.GamesDoc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GamesDoc), args.Error(1)
}
