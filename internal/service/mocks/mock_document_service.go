package mocks

import (
	"context"
	"encoding/json"

	"legaldocs/internal/drs"
	"legaldocs/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

var _ service.DocumentService = (*MockDocumentService)(nil)

func (m *MockDocumentService) SignedUploadURL(ctx context.Context, fileName string) (*service.SignedURL, error) {
	args := m.Called(ctx, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SignedURL), args.Error(1)
}

func (m *MockDocumentService) Upload(ctx context.Context, info drs.RequestInfo, body []byte) (json.RawMessage, error) {
	args := m.Called(ctx, info, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, documentClass, id string) (*service.Content, error) {
	args := m.Called(ctx, documentClass, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Content), args.Error(1)
}

func (m *MockDocumentService) GetObject(ctx context.Context, key string) (*service.Content, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Content), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
