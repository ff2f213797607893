package domain

import "time"

// HistoryEntry is one recorded link generation
type HistoryEntry struct {
	ID        int64
	UserID    int64
	BaseURL   string
	TaggedURL string
	ShortURL  string
	CreatedAt time.Time
}
