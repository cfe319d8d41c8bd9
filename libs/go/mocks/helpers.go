package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockAccountIndexerForTest creates a new mock AccountIndexer for testing
func NewMockAccountIndexerForTest(t *testing.T) *MockAccountIndexer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAccountIndexer(ctrl)
}

// NewMockConnectionStoreForTest creates a new mock ConnectionStore for testing
func NewMockConnectionStoreForTest(t *testing.T) *MockConnectionStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockConnectionStore(ctrl)
}

// NewMockConnectServiceForTest creates a new mock ConnectService for testing
func NewMockConnectServiceForTest(t *testing.T) *MockConnectService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockConnectService(ctrl)
}
