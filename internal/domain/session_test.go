package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	sess := NewSession("https://example.com/page")

	assert.Equal(t, StateAwaitingSource, sess.State)
	assert.Equal(t, "https://example.com/page", sess.BaseURL)
	assert.Empty(t, sess.Source)
	assert.Empty(t, sess.Date)
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid date", "2025-10-10", true},
		{"leap day", "2024-02-29", true},
		{"impossible month", "2025-13-40", false},
		{"non-leap february 29th", "2025-02-29", false},
		{"wrong separator", "2025/10/10", false},
		{"missing zero padding", "2025-1-5", false},
		{"free text", "завтра", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDate(tt.input))
		})
	}
}

func TestValidSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "vk", true},
		{"with digits and underscores", "new_source_2024", true},
		{"uppercase rejected", "VK", false},
		{"spaces rejected", "new source", false},
		{"cyrillic rejected", "вк", false},
		{"hyphen rejected", "new-source", false},
		{"empty rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidSlug(tt.input))
		})
	}
}
