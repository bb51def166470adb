package mocks

import (
	"context"

	"stresstrack/internal/model"
	"stresstrack/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Create(ctx context.Context, rec *model.StressRecord) (*model.StressRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(context.Context, *model.StressRecord) *model.StressRecord); ok {
		return f(ctx, rec), args.Error(1)
	}
	return args.Get(0).(*model.StressRecord), args.Error(1)
}

func (m *MockRecordRepository) ListByUser(ctx context.Context, userID string, pq repository.PageQuery) ([]model.StressRecord, error) {
	args := m.Called(ctx, userID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StressRecord), args.Error(1)
}
