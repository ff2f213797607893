package testutil

import (
	"context"

	"utmbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAccessRepository is a mock for repository.AccessRepository
type MockAccessRepository struct {
	mock.Mock
}

func (m *MockAccessRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessRepository) Authorize(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockAccessRepository) IsBanned(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessRepository) Ban(userID int64, reason string) error {
	args := m.Called(userID, reason)
	return args.Error(0)
}

func (m *MockAccessRepository) AuthAttempts(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccessRepository) IncrementAuthAttempts(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccessRepository) ResetAuthAttempts(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockHistoryRepository is a mock for repository.HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Add(userID int64, baseURL, taggedURL, shortURL string) error {
	args := m.Called(userID, baseURL, taggedURL, shortURL)
	return args.Error(0)
}

func (m *MockHistoryRepository) Recent(userID int64, limit int) ([]domain.HistoryEntry, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

// MockCatalogRepository is a mock for repository.CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(categoryKey string) ([]domain.CatalogEntry, error) {
	args := m.Called(categoryKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogRepository) Add(categoryKey string, entry domain.CatalogEntry) error {
	args := m.Called(categoryKey, entry)
	return args.Error(0)
}

func (m *MockCatalogRepository) Delete(categoryKey, slug string) error {
	args := m.Called(categoryKey, slug)
	return args.Error(0)
}

// MockShortener is a mock for service.Shortener
type MockShortener struct {
	mock.Mock
}

func (m *MockShortener) Shorten(ctx context.Context, longURL string) (string, error) {
	args := m.Called(ctx, longURL)
	return args.String(0), args.Error(1)
}
