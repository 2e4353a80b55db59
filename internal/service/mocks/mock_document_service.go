package mocks

import (
	"context"
	"encoding/json"
	"io"

	"mapapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Save(ctx context.Context, filename string, data json.RawMessage) error {
	args := m.Called(ctx, filename, data)
	return args.Error(0)
}

func (m *MockDocumentService) Load(ctx context.Context, filename string) (json.RawMessage, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)
	return args.Error(0)
}

func (m *MockDocumentService) Exists(ctx context.Context, filename string) (bool, error) {
	args := m.Called(ctx, filename)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context) ([]model.DocumentInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentInfo), args.Error(1)
}

type MockMapService struct {
	mock.Mock
}

func (m *MockMapService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string) (*model.UploadResult, error) {
	args := m.Called(ctx, r, originalFilename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadResult), args.Error(1)
}
