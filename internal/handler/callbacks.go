package handler

import (
	"strings"
	"unicode"

	"utmbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback decodes every inline-button press once and dispatches
// on the decoded kind. Unknown tokens are acknowledged as no-ops.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)

	cb, err := domain.DecodeCallback(data)
	if err != nil {
		h.logger.Warn("Unhandled callback",
			zap.String("data", data),
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return c.Respond()
	}

	switch cb.Kind {
	case domain.CallbackSource:
		return h.selectSource(c, cb.Value)
	case domain.CallbackMediumGroup:
		return h.selectMediumGroup(c, cb.Value)
	case domain.CallbackMedium:
		return h.selectMedium(c, cb.Value)
	case domain.CallbackCampaignGroup:
		return h.selectCampaignGroup(c, cb.Value)
	case domain.CallbackCampaign:
		return h.selectCampaign(c, cb.Value)
	case domain.CallbackDateChoice:
		return h.selectDateChoice(c, cb.Value)
	case domain.CallbackBack:
		return h.handleBack(c, cb.Value)
	case domain.CallbackAddCategory:
		return h.selectAddCategory(c, cb.Value)
	case domain.CallbackViewCategory:
		return h.viewCategory(c, cb.Value)
	case domain.CallbackDeleteItem:
		return h.deleteItem(c, cb.Value, cb.Slug)
	case domain.CallbackBackToCategories:
		return h.backToCategories(c)
	}

	return c.Respond()
}

// editMessage edits the message the callback came from, falling back to
// a log entry when Telegram rejects the edit (e.g. message already
// modified).
func (h *Handler) editMessage(c tele.Context, text string, opts ...interface{}) {
	if err := c.Edit(text, opts...); err != nil {
		h.logger.Debug("Failed to edit message",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
	}
}
