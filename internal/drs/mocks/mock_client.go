package mocks

import (
	"context"
	"encoding/json"

	"legaldocs/internal/drs"

	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

var _ drs.Client = (*MockClient)(nil)

func (m *MockClient) PostClassDocument(ctx context.Context, info drs.RequestInfo, body []byte) (json.RawMessage, error) {
	args := m.Called(ctx, info, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockClient) GetDocument(ctx context.Context, info drs.RequestInfo) (json.RawMessage, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockClient) DeleteDocument(ctx context.Context, documentServiceID string) (json.RawMessage, error) {
	args := m.Called(ctx, documentServiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
