package postgres

import (
	"database/sql"

	"utmbot/internal/domain"
)

// HistoryRepo implements repository.HistoryRepository
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepo creates a new history repository
func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Add appends a generated link to the user's history
func (r *HistoryRepo) Add(userID int64, baseURL, taggedURL, shortURL string) error {
	query := `
		INSERT INTO history (user_id, base_url, tagged_url, short_url, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := r.db.Exec(query, userID, baseURL, taggedURL, shortURL)
	return err
}

// Recent returns up to limit history entries, most recent first
func (r *HistoryRepo) Recent(userID int64, limit int) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, user_id, base_url, tagged_url, short_url, created_at
		FROM history
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.BaseURL, &e.TaggedURL, &e.ShortURL, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
