package mocks

import (
	"context"

	"legaldocs/internal/model"
	"legaldocs/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockDocumentRepository struct {
	mock.Mock
}

var _ repository.DocumentRepository = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) FindByFileKey(ctx context.Context, fileKey string) (*model.Document, error) {
	args := m.Called(ctx, fileKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

type MockFilingRepository struct {
	mock.Mock
}

var _ repository.FilingRepository = (*MockFilingRepository)(nil)

func (m *MockFilingRepository) FindByID(ctx context.Context, id int64) (*model.Filing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Filing), args.Error(1)
}
