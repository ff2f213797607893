package handler

import (
	"strings"

	"utmbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes free-form text messages: password attempts, menu
// buttons, base URLs, manual dates and catalog-editing input.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Commands are handled by their own handlers
	if strings.HasPrefix(text, "/") {
		return nil
	}

	authorized, err := h.auth.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalError)
	}
	if !authorized {
		return h.handlePassword(c, text)
	}

	switch text {
	case btnSendLinkText:
		return c.Send(
			"✍️ Пришлите ссылку, для которой нужно собрать UTM-метки. " +
				"Она должна начинаться с http:// или https://",
		)
	case btnHistoryText:
		return h.handleHistory(c)
	}

	// A base URL pre-empts whatever step the user was in
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		return h.handleBaseURL(c, text)
	}

	if sess, ok := h.sessions.Get(userID); ok && sess.State == domain.StateAwaitingManualDate {
		return h.handleManualDate(c, sess, text)
	}

	if edit, ok := h.edits.Get(userID); ok && edit.Step != domain.EditStepNone {
		return h.handleEditText(c, edit, text)
	}

	return c.Send("Пришлите ссылку (http:// или https://), чтобы собрать UTM-метки.")
}
