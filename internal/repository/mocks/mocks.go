package mocks

import (
	"context"

	"github.com/seywell/daypack/internal/domain/roadmap"
	"github.com/stretchr/testify/mock"
)

// RoadmapRepository is a mock for repository.RoadmapRepository.
type RoadmapRepository struct {
	mock.Mock
}

func (m *RoadmapRepository) Create(ctx context.Context, userID string, rm *roadmap.Roadmap) error {
	args := m.Called(ctx, userID, rm)
	return args.Error(0)
}

func (m *RoadmapRepository) Get(ctx context.Context, userID, id string) (*roadmap.Roadmap, error) {
	args := m.Called(ctx, userID, id)
	if rm, ok := args.Get(0).(*roadmap.Roadmap); ok {
		return rm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RoadmapRepository) List(ctx context.Context, userID string) ([]roadmap.Summary, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]roadmap.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RoadmapRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *RoadmapRepository) Save(ctx context.Context, userID string, rm *roadmap.Roadmap) error {
	args := m.Called(ctx, userID, rm)
	return args.Error(0)
}
