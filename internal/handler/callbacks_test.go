package handler

import (
	"testing"
	"time"

	"utmbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal token",
			input:    "src:vk",
			expected: "src:vk",
		},
		{
			name:     "token with whitespace",
			input:    "  src:vk  ",
			expected: "src:vk",
		},
		{
			name:     "token with newline",
			input:    "src:\nvk",
			expected: "src:vk",
		},
		{
			name:     "token with unprintable characters",
			input:    "src\x00:vk\x01",
			expected: "src:vk",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEntriesMarkupLayout(t *testing.T) {
	entries := []domain.CatalogEntry{
		{Name: "ВКонтакте", Slug: "vk"},
		{Name: "Телеграм", Slug: "tg"},
		{Name: "Инстаграм", Slug: "ig"},
	}

	markup := entriesMarkup(entries, domain.CallbackSource, 2, backBtn(domain.BackToMediumGroups))

	// Two rows of entries (2 + 1), plus the back row
	assert.Len(t, markup.InlineKeyboard, 3)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Len(t, markup.InlineKeyboard[1], 1)
	assert.Len(t, markup.InlineKeyboard[2], 1)

	assert.Equal(t, "ВКонтакте", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "src:vk", markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, "back:medium", markup.InlineKeyboard[2][0].Data)
}

func TestDateChoiceMarkup(t *testing.T) {
	markup := dateChoiceMarkup()

	assert.Len(t, markup.InlineKeyboard, 3)
	assert.Equal(t, "adddate:today", markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, "adddate:tomorrow", markup.InlineKeyboard[0][1].Data)
	assert.Equal(t, "adddate:dayafter", markup.InlineKeyboard[1][0].Data)
	assert.Equal(t, "adddate:manual", markup.InlineKeyboard[1][1].Data)
	assert.Equal(t, "adddate:none", markup.InlineKeyboard[2][0].Data)
}

func TestDateForChoice(t *testing.T) {
	now := time.Now()

	assert.Equal(t, now.Format(domain.DateLayout), dateForChoice(domain.DateToday))
	assert.Equal(t, now.AddDate(0, 0, 1).Format(domain.DateLayout), dateForChoice(domain.DateTomorrow))
	assert.Equal(t, now.AddDate(0, 0, 2).Format(domain.DateLayout), dateForChoice(domain.DateDayAfter))
}
