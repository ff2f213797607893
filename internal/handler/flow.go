package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"utmbot/internal/domain"
	"utmbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgNoSession        = "Сначала пришлите ссылку."
	msgEmptyGroup       = "В этой группе пока нет меток."
	msgChooseMediumGrp  = "Выберите группу utm_medium:"
	msgChooseCampGrp    = "Выберите группу utm_campaign:"
	msgManualDatePrompt = "Введите дату в формате YYYY-MM-DD (например: 2025-10-10)"

	submitTimeout = 30 * time.Second
)

// handleBaseURL starts a fresh session, discarding any previous one
func (h *Handler) handleBaseURL(c tele.Context, baseURL string) error {
	userID := c.Sender().ID

	sources, err := h.catalog.Sources()
	if err != nil {
		h.logger.Error("Failed to load sources", zap.Error(err))
		return c.Send(msgInternalError)
	}
	if len(sources) == 0 {
		return c.Send("❌ Список utm_source пуст. Добавьте данные через команду /add.")
	}

	h.sessions.Put(userID, domain.NewSession(baseURL))

	h.logger.Info("Received base URL",
		zap.Int64("user_id", userID),
		zap.String("base_url", baseURL),
	)

	return c.Send(
		"Выберите источник трафика (utm_source):",
		entriesMarkup(sources, domain.CallbackSource, 3),
	)
}

// selectSource records utm_source and shows the medium groups
func (h *Handler) selectSource(c tele.Context, slug string) error {
	userID := c.Sender().ID

	sess, ok := h.sessions.Get(userID)
	if !ok {
		return respondAlert(c, msgNoSession)
	}
	if sess.State != domain.StateAwaitingSource {
		return c.Respond()
	}

	sess.Source = slug
	sess.State = domain.StateAwaitingMediumGroup

	h.logger.Info("Source selected",
		zap.Int64("user_id", userID),
		zap.String("utm_source", slug),
	)

	h.editMessage(c, "Источник (utm_source) выбран: "+slug)
	if err := c.Send(msgChooseMediumGrp, h.mediumGroupsMarkup()); err != nil {
		return err
	}
	return c.Respond()
}

// selectMediumGroup shows the mediums of one group
func (h *Handler) selectMediumGroup(c tele.Context, groupID string) error {
	sess, ok := h.sessions.Get(c.Sender().ID)
	if !ok {
		return respondAlert(c, msgNoSession)
	}
	if sess.State != domain.StateAwaitingMediumGroup {
		return c.Respond()
	}

	group, found := h.catalog.MediumGroup(groupID)
	if !found {
		return respondAlert(c, "❌ Ошибка!")
	}

	entries, err := h.catalog.Entries(group.Key)
	if err != nil {
		h.logger.Error("Failed to load mediums", zap.Error(err))
		return respondAlert(c, msgInternalError)
	}
	if len(entries) == 0 {
		return respondAlert(c, msgEmptyGroup)
	}

	sess.State = domain.StateAwaitingMedium

	markup := entriesMarkup(entries, domain.CallbackMedium, 2, backBtn(domain.BackToMediumGroups))

	h.editMessage(c, "Вы выбрали группу: "+group.Label)
	if err := c.Send("Теперь выберите конкретную utm_medium:", markup); err != nil {
		return err
	}
	return c.Respond()
}

// selectMedium records utm_medium and shows the campaign groups
func (h *Handler) selectMedium(c tele.Context, slug string) error {
	userID := c.Sender().ID

	sess, ok := h.sessions.Get(userID)
	if !ok {
		return respondAlert(c, msgNoSession)
	}
	if sess.State != domain.StateAwaitingMedium {
		return c.Respond()
	}

	sess.Medium = slug
	sess.State = domain.StateAwaitingCampaignGroup

	h.logger.Info("Medium selected",
		zap.Int64("user_id", userID),
		zap.String("utm_medium", slug),
	)

	h.editMessage(c, "Тип трафика (utm_medium) выбран: "+slug)
	if err := c.Send(msgChooseCampGrp, h.campaignGroupsMarkup()); err != nil {
		return err
	}
	return c.Respond()
}

// selectCampaignGroup shows the campaigns of one group
func (h *Handler) selectCampaignGroup(c tele.Context, groupID string) error {
	sess, ok := h.sessions.Get(c.Sender().ID)
	if !ok {
		return respondAlert(c, msgNoSession)
	}
	if sess.State != domain.StateAwaitingCampaignGroup {
		return c.Respond()
	}

	group, found := h.catalog.CampaignGroup(groupID)
	if !found {
		return respondAlert(c, "❌ Ошибка!")
	}

	entries, err := h.catalog.Entries(group.Key)
	if err != nil {
		h.logger.Error("Failed to load campaigns", zap.Error(err))
		return respondAlert(c, msgInternalError)
	}
	if len(entries) == 0 {
		return respondAlert(c, msgEmptyGroup)
	}

	sess.State = domain.StateAwaitingCampaign

	markup := entriesMarkup(entries, domain.CallbackCampaign, 2, backBtn(domain.BackToCampaignGroups))

	h.editMessage(c, "Вы выбрали группу кампаний: "+group.Label)
	if err := c.Send("Теперь выберите конкретную кампанию (utm_campaign):", markup); err != nil {
		return err
	}
	return c.Respond()
}

// selectCampaign records utm_campaign and asks about the date
func (h *Handler) selectCampaign(c tele.Context, slug string) error {
	userID := c.Sender().ID

	sess, ok := h.sessions.Get(userID)
	if !ok {
		return respondAlert(c, msgNoSession)
	}
	if sess.State != domain.StateAwaitingCampaign {
		return c.Respond()
	}

	sess.Campaign = slug
	sess.State = domain.StateAwaitingDateChoice

	h.logger.Info("Campaign selected",
		zap.Int64("user_id", userID),
		zap.String("utm_campaign", slug),
	)

	h.editMessage(c, "Кампания (utm_campaign) выбрана: "+slug)
	if err := c.Send(
		"Добавить дату (utm_date) к ссылке? Выберите один из вариантов:",
		dateChoiceMarkup(),
	); err != nil {
		return err
	}
	return c.Respond()
}

// selectDateChoice resolves the date option and proceeds to submission
func (h *Handler) selectDateChoice(c tele.Context, choice string) error {
	userID := c.Sender().ID

	sess, ok := h.sessions.Get(userID)
	if !ok {
		return respondAlert(c, msgNoSession)
	}
	if sess.State != domain.StateAwaitingDateChoice {
		return c.Respond()
	}

	switch choice {
	case domain.DateToday, domain.DateTomorrow, domain.DateDayAfter:
		sess.Date = dateForChoice(choice)
		if err := c.Respond(); err != nil {
			return err
		}
		return h.submit(c, sess)

	case domain.DateNone:
		sess.Date = ""
		if err := c.Respond(); err != nil {
			return err
		}
		return h.submit(c, sess)

	case domain.DateManual:
		sess.State = domain.StateAwaitingManualDate
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(msgManualDatePrompt)
	}

	h.logger.Warn("Unknown date choice",
		zap.Int64("user_id", userID),
		zap.String("choice", choice),
	)
	return respondAlert(c, "❌ Ошибка!")
}

// handleManualDate validates free-text date input. On parse failure the
// state is unchanged and the user is re-prompted, with no attempt
// limit.
func (h *Handler) handleManualDate(c tele.Context, sess *domain.Session, text string) error {
	if !domain.ValidDate(text) {
		return c.Send("Неверный формат даты. Пожалуйста, введите в формате YYYY-MM-DD, например: 2025-10-10")
	}

	// Stored verbatim, not re-serialized
	sess.Date = text
	return h.submit(c, sess)
}

// handleBack returns from a concrete-item screen to its group screen.
// Prior selections are kept.
func (h *Handler) handleBack(c tele.Context, target string) error {
	sess, ok := h.sessions.Get(c.Sender().ID)
	if !ok {
		return respondAlert(c, msgNoSession)
	}

	switch target {
	case domain.BackToMediumGroups:
		if sess.State != domain.StateAwaitingMedium {
			return c.Respond()
		}
		sess.State = domain.StateAwaitingMediumGroup
		h.editMessage(c, msgChooseMediumGrp, h.mediumGroupsMarkup())
		return c.Respond()

	case domain.BackToCampaignGroups:
		if sess.State != domain.StateAwaitingCampaign {
			return c.Respond()
		}
		sess.State = domain.StateAwaitingCampaignGroup
		h.editMessage(c, msgChooseCampGrp, h.campaignGroupsMarkup())
		return c.Respond()
	}

	return respondAlert(c, "❌ Ошибка!")
}

// submit shortens the composed URL and reports the result. On failure
// the session's selections stay intact.
func (h *Handler) submit(c tele.Context, sess *domain.Session) error {
	userID := c.Sender().ID

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	result, err := h.links.Submit(ctx, userID, sess)
	if err != nil {
		if errors.Is(err, service.ErrEmptyShortURL) {
			return c.Send("❌ Не удалось сократить ссылку. Попробуйте позже.")
		}
		return c.Send("❌ Ошибка при обращении к сервису сокращения. Попробуйте позже.")
	}

	h.sessions.Delete(userID)

	text := strings.Join([]string{
		"✅ Результаты генерации ссылок:",
		"🔗 Исходная:\n" + result.BaseURL,
		"🧩 С UTM:\n" + result.TaggedURL,
		"✂️ Сокращённая:\n" + result.ShortURL,
	}, "\n\n")

	return c.Send(text)
}

// dateForChoice computes the literal local date for a preset choice
func dateForChoice(choice string) string {
	now := time.Now()
	switch choice {
	case domain.DateTomorrow:
		now = now.AddDate(0, 0, 1)
	case domain.DateDayAfter:
		now = now.AddDate(0, 0, 2)
	}
	return now.Format(domain.DateLayout)
}
