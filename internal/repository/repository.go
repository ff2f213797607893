package repository

import (
	"errors"

	"utmbot/internal/domain"
)

// Errors shared by store implementations
var (
	ErrUnknownCategory = errors.New("unknown catalog category")
	ErrDuplicateSlug   = errors.New("slug already exists in category")
)

// AccessRepository defines authorization and ban data operations
type AccessRepository interface {
	IsAuthorized(userID int64) (bool, error)
	Authorize(userID int64) error
	IsBanned(userID int64) (bool, error)
	Ban(userID int64, reason string) error
	AuthAttempts(userID int64) (int, error)
	IncrementAuthAttempts(userID int64) (int, error)
	ResetAuthAttempts(userID int64) error
}

// HistoryRepository defines link history operations
type HistoryRepository interface {
	Add(userID int64, baseURL, taggedURL, shortURL string) error
	// Recent returns up to limit entries, most recent first.
	Recent(userID int64, limit int) ([]domain.HistoryEntry, error)
}

// CatalogRepository defines tag catalog operations. Categories are
// addressed by their internal key ("source", "medium_stories", ...).
type CatalogRepository interface {
	// List returns the entries of a category. Unknown keys yield an
	// empty list, not an error.
	List(categoryKey string) ([]domain.CatalogEntry, error)
	Add(categoryKey string, entry domain.CatalogEntry) error
	// Delete removes every entry with the given slug. Deleting an
	// absent slug is not an error.
	Delete(categoryKey, slug string) error
}
