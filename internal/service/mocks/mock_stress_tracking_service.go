package mocks

import (
	"context"
	"io"

	"stresstrack/internal/model"
	"stresstrack/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockStressTrackingService struct {
	mock.Mock
}

func (m *MockStressTrackingService) Create(ctx context.Context, in service.CreateRecordInput) (*model.StressRecord, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StressRecord), args.Error(1)
}

func (m *MockStressTrackingService) GetAllRecords(ctx context.Context, userID string, page, pageSize int) ([]model.StressRecord, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StressRecord), args.Error(1)
}

func (m *MockStressTrackingService) UploadImage(ctx context.Context, r io.Reader, mimeType string) (string, error) {
	args := m.Called(ctx, r, mimeType)
	return args.String(0), args.Error(1)
}
