package handler

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleHistory shows the user's most recent generated links
func (h *Handler) handleHistory(c tele.Context) error {
	userID := c.Sender().ID

	entries, err := h.links.Recent(userID)
	if err != nil {
		h.logger.Error("Failed to load history",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}

	if len(entries) == 0 {
		return c.Send("Пока нет сохранённых ссылок. Сначала сгенерируйте UTM.")
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "🧾 Последние сохранённые ссылки:")
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s — исходная: %s", i+1, entry.ShortURL, entry.BaseURL))
	}

	return c.Send(strings.Join(lines, "\n"))
}
