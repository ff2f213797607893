package handler

import (
	"utmbot/internal/domain"
	"utmbot/internal/service"

	tele "gopkg.in/telebot.v3"
)

// entriesMarkup lays out catalog entries as inline buttons, perRow per
// row, with optional extra buttons (e.g. "back") on a final row.
func entriesMarkup(entries []domain.CatalogEntry, kind domain.CallbackKind, perRow int, extra ...tele.Btn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	var rows []tele.Row
	var row tele.Row
	for _, entry := range entries {
		row = append(row, callbackBtn(entry.Name, domain.Callback{Kind: kind, Value: entry.Slug}))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	if len(extra) > 0 {
		rows = append(rows, tele.Row(extra))
	}

	markup.Inline(rows...)
	return markup
}

// mediumGroupsMarkup renders the utm_medium group-selection screen
func (h *Handler) mediumGroupsMarkup() *tele.ReplyMarkup {
	return groupsMarkup(h.catalog.MediumGroups(), domain.CallbackMediumGroup)
}

// campaignGroupsMarkup renders the utm_campaign group-selection screen
func (h *Handler) campaignGroupsMarkup() *tele.ReplyMarkup {
	return groupsMarkup(h.catalog.CampaignGroups(), domain.CallbackCampaignGroup)
}

func groupsMarkup(groups []service.Group, kind domain.CallbackKind) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	var rows []tele.Row
	var row tele.Row
	for _, g := range groups {
		row = append(row, callbackBtn(g.Label, domain.Callback{Kind: kind, Value: g.ID}))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	markup.Inline(rows...)
	return markup
}

// dateChoiceMarkup renders the date-selection screen
func dateChoiceMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		tele.Row{
			dateBtn("📅 Сегодня", domain.DateToday),
			dateBtn("📅 Завтра", domain.DateTomorrow),
		},
		tele.Row{
			dateBtn("📅 Послезавтра", domain.DateDayAfter),
			dateBtn("✏️ Ввести дату", domain.DateManual),
		},
		tele.Row{
			dateBtn("❌ Не добавлять дату", domain.DateNone),
		},
	)
	return markup
}

func dateBtn(text, choice string) tele.Btn {
	return callbackBtn(text, domain.Callback{Kind: domain.CallbackDateChoice, Value: choice})
}

// backBtn returns to a group-selection screen
func backBtn(target string) tele.Btn {
	return callbackBtn("⬅ Назад", domain.Callback{Kind: domain.CallbackBack, Value: target})
}

// respondAlert acknowledges a callback with a popup message
func respondAlert(c tele.Context, text string) error {
	return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
}
