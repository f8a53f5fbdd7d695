package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmatos/gamewatch/internal/models"
)

// MockDocProvider is a mock implementation of services.DocProvider
type MockDocProvider struct {
	mock.Mock
}

func (m *MockDocProvider) Doc(ctx context.Context) (*models.GamesDoc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GamesDoc), args.Error(1)
}
