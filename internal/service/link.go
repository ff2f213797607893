package service

import (
	"context"
	"errors"
	"fmt"

	"utmbot/internal/domain"
	"utmbot/internal/repository"
	"utmbot/internal/utm"

	"go.uber.org/zap"
)

var (
	// ErrShortenUnavailable wraps transport-level failures of the
	// shortening service.
	ErrShortenUnavailable = errors.New("shortening service unavailable")
	// ErrEmptyShortURL means the service answered but declined to
	// shorten the link.
	ErrEmptyShortURL = errors.New("shortening service returned no url")
)

// Shortener is the outbound boundary to the link-shortening API
type Shortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

// Result is a completed link generation
type Result struct {
	BaseURL   string
	TaggedURL string
	ShortURL  string
}

// LinkService performs the terminal submission step: compose the
// tagged URL, shorten it and record the result.
type LinkService struct {
	history      repository.HistoryRepository
	shortener    Shortener
	historyLimit int
	logger       *zap.Logger
}

// NewLinkService creates a new link service
func NewLinkService(history repository.HistoryRepository, shortener Shortener, historyLimit int, logger *zap.Logger) *LinkService {
	return &LinkService{
		history:      history,
		shortener:    shortener,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Submit composes the tagged URL from the session's selections,
// shortens it and appends the result to the user's history. History is
// written only when shortening succeeded.
func (s *LinkService) Submit(ctx context.Context, userID int64, sess *domain.Session) (*Result, error) {
	taggedURL := utm.Build(sess.BaseURL, sess.Source, sess.Medium, sess.Campaign)
	if sess.Date != "" {
		taggedURL = utm.WithDate(taggedURL, sess.Date)
	}

	s.logger.Info("Submitting tagged URL",
		zap.Int64("user_id", userID),
		zap.String("tagged_url", taggedURL),
	)

	shortURL, err := s.shortener.Shorten(ctx, taggedURL)
	if err != nil {
		s.logger.Error("Shortening request failed",
			zap.Int64("user_id", userID),
			zap.String("tagged_url", taggedURL),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrShortenUnavailable, err)
	}
	if shortURL == "" {
		s.logger.Error("Shortening service returned empty result",
			zap.Int64("user_id", userID),
			zap.String("tagged_url", taggedURL),
		)
		return nil, ErrEmptyShortURL
	}

	if err := s.history.Add(userID, sess.BaseURL, taggedURL, shortURL); err != nil {
		// The link is already generated, losing the history row is
		// not worth failing the whole submission.
		s.logger.Warn("Failed to record history",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	return &Result{
		BaseURL:   sess.BaseURL,
		TaggedURL: taggedURL,
		ShortURL:  shortURL,
	}, nil
}

// Recent returns the user's latest history entries, most recent first
func (s *LinkService) Recent(userID int64) ([]domain.HistoryEntry, error) {
	return s.history.Recent(userID, s.historyLimit)
}
