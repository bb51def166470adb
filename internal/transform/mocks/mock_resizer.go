package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockResizer struct {
	mock.Mock
}

func (m *MockResizer) Resize(data []byte) ([]byte, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
