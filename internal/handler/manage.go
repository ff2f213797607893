package handler

import (
	"errors"
	"fmt"
	"strings"

	"utmbot/internal/domain"
	"utmbot/internal/repository"
	"utmbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgManagePanel = "🛠 Панель управления UTM-метками\n\n" +
	"Выберите категорию для добавления новых меток:"

// handleAdd opens the catalog-management panel
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID

	h.edits.Put(userID, &domain.EditSession{})

	return c.Send(msgManagePanel, h.categoriesMarkup())
}

// selectAddCategory starts the add-tag sub-flow for one category
func (h *Handler) selectAddCategory(c tele.Context, categoryID string) error {
	userID := c.Sender().ID

	cat, ok := h.catalog.CategoryByID(categoryID)
	if !ok {
		return respondAlert(c, "❌ Ошибка!")
	}

	entries, err := h.catalog.Entries(cat.Key)
	if err != nil {
		h.logger.Error("Failed to load category entries", zap.Error(err))
		return respondAlert(c, msgInternalError)
	}

	h.edits.Put(userID, &domain.EditSession{
		Category: categoryID,
		Step:     domain.EditStepName,
	})

	var itemsText string
	if len(entries) > 0 {
		itemsText = "\n\n📋 Существующие метки:\n" + entriesList(entries)
	} else {
		itemsText = "\n\n📭 В этой категории пока нет меток"
	}

	h.editMessage(c,
		fmt.Sprintf(
			"Выбрана категория: %s\n"+
				"Теперь введите название новой метки (например: 'Новый источник')%s\n\n"+
				"Или нажмите кнопку ниже чтобы посмотреть все метки:",
			cat.Name, itemsText,
		),
		h.managementMarkup(cat, entries),
	)
	return c.Respond()
}

// handleEditText advances the add-tag sub-flow on free-text input
func (h *Handler) handleEditText(c tele.Context, edit *domain.EditSession, text string) error {
	userID := c.Sender().ID

	switch edit.Step {
	case domain.EditStepName:
		if text == "" {
			return c.Send("Название не может быть пустым. Попробуйте еще раз:")
		}

		edit.Name = text
		edit.Step = domain.EditStepValue

		return c.Send(fmt.Sprintf(
			"Отлично! Название: '%s'\n\n"+
				"Теперь введите значение для UTM-метки (только латинские буквы, цифры и нижние подчеркивания):\n"+
				"Пример: new_source_2024",
			text,
		))

	case domain.EditStepValue:
		if !domain.ValidSlug(text) {
			return c.Send(
				"Неверный формат! Используйте только:\n" +
					"• латинские буквы в нижнем регистре\n" +
					"• цифры\n" +
					"• нижние подчеркивания\n\n" +
					"Пример: new_source_2024\n" +
					"Попробуйте еще раз:",
			)
		}

		cat, ok := h.catalog.CategoryByID(edit.Category)
		if !ok {
			h.edits.Delete(userID)
			return c.Send(msgInternalError)
		}

		err := h.catalog.AddEntry(cat.Key, edit.Name, text)
		h.edits.Put(userID, &domain.EditSession{})

		if err != nil {
			if errors.Is(err, repository.ErrDuplicateSlug) {
				return c.Send(
					"❌ Ошибка! Возможно, метка с таким значением уже существует.\n" +
						"Попробуйте другое значение.",
				)
			}
			h.logger.Error("Failed to add catalog entry",
				zap.Int64("user_id", userID),
				zap.String("category", cat.Key),
				zap.Error(err),
			)
			return c.Send(msgInternalError)
		}

		h.logger.Info("Catalog entry added",
			zap.Int64("user_id", userID),
			zap.String("category", cat.Key),
			zap.String("slug", text),
		)

		if err := c.Send(fmt.Sprintf(
			"✅ Успешно добавлено!\n"+
				"Категория: %s\n"+
				"Название: %s\n"+
				"Значение: %s\n\n"+
				"Метка теперь доступна при создании ссылок!",
			cat.Name, edit.Name, text,
		)); err != nil {
			return err
		}

		entries, err := h.catalog.Entries(cat.Key)
		if err != nil {
			h.logger.Error("Failed to reload category entries", zap.Error(err))
			return nil
		}

		return c.Send(
			"📋 Обновленный список меток в категории:\n"+entriesList(entries),
			h.managementMarkup(cat, entries),
		)
	}

	return nil
}

// viewCategory lists every tag of a category
func (h *Handler) viewCategory(c tele.Context, categoryID string) error {
	cat, ok := h.catalog.CategoryByID(categoryID)
	if !ok {
		return respondAlert(c, "❌ Ошибка!")
	}

	entries, err := h.catalog.Entries(cat.Key)
	if err != nil {
		h.logger.Error("Failed to load category entries", zap.Error(err))
		return respondAlert(c, msgInternalError)
	}

	h.editMessage(c, categoryListText(cat, entries), h.managementMarkup(cat, entries))
	return c.Respond()
}

// deleteItem removes a tag and re-renders the category
func (h *Handler) deleteItem(c tele.Context, categoryID, slug string) error {
	cat, ok := h.catalog.CategoryByID(categoryID)
	if !ok {
		return respondAlert(c, "❌ Ошибка!")
	}

	if err := h.catalog.DeleteEntry(cat.Key, slug); err != nil {
		h.logger.Error("Failed to delete catalog entry",
			zap.String("category", cat.Key),
			zap.String("slug", slug),
			zap.Error(err),
		)
		return respondAlert(c, "❌ Ошибка при удалении!")
	}

	h.logger.Info("Catalog entry deleted",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("category", cat.Key),
		zap.String("slug", slug),
	)

	entries, err := h.catalog.Entries(cat.Key)
	if err != nil {
		h.logger.Error("Failed to reload category entries", zap.Error(err))
		return c.Respond()
	}

	h.editMessage(c, categoryListText(cat, entries), h.managementMarkup(cat, entries))
	return c.Respond(&tele.CallbackResponse{Text: "✅ Метка удалена!"})
}

// backToCategories returns to the category list
func (h *Handler) backToCategories(c tele.Context) error {
	h.editMessage(c, msgManagePanel, h.categoriesMarkup())
	return c.Respond()
}

// categoriesMarkup renders one button per manageable category
func (h *Handler) categoriesMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	var rows []tele.Row
	for _, cat := range h.catalog.Categories() {
		rows = append(rows, tele.Row{
			callbackBtn(cat.Name, domain.Callback{Kind: domain.CallbackAddCategory, Value: cat.ID}),
		})
	}

	markup.Inline(rows...)
	return markup
}

// managementMarkup renders view/delete controls for one category
func (h *Handler) managementMarkup(cat service.Category, entries []domain.CatalogEntry) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	rows := []tele.Row{
		{callbackBtn("👁️ Посмотреть все метки", domain.Callback{Kind: domain.CallbackViewCategory, Value: cat.ID})},
	}
	for _, entry := range entries {
		rows = append(rows, tele.Row{
			callbackBtn(
				"❌ Удалить "+entry.Name,
				domain.Callback{Kind: domain.CallbackDeleteItem, Value: cat.ID, Slug: entry.Slug},
			),
		})
	}
	rows = append(rows, tele.Row{
		callbackBtn("⬅️ Назад к категориям", domain.Callback{Kind: domain.CallbackBackToCategories}),
	})

	markup.Inline(rows...)
	return markup
}

func entriesList(entries []domain.CatalogEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("• %s (%s)", entry.Name, entry.Slug))
	}
	return strings.Join(lines, "\n")
}

func categoryListText(cat service.Category, entries []domain.CatalogEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("📭 В категории '%s' пока нет меток", cat.Name)
	}
	return fmt.Sprintf("📋 Все метки в категории '%s':\n\n%s", cat.Name, entriesList(entries))
}
