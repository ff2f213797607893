package testutil

import (
	"time"

	"utmbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSession creates a session with all selections filled in
func NewTestSession(baseURL, source, medium, campaign string) *domain.Session {
	return &domain.Session{
		State:    domain.StateAwaitingDateChoice,
		BaseURL:  baseURL,
		Source:   source,
		Medium:   medium,
		Campaign: campaign,
	}
}

// NewTestHistoryEntry creates a history entry
func NewTestHistoryEntry(id, userID int64, baseURL, taggedURL, shortURL string) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:        id,
		UserID:    userID,
		BaseURL:   baseURL,
		TaggedURL: taggedURL,
		ShortURL:  shortURL,
		CreatedAt: time.Now(),
	}
}
