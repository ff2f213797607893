package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgWelcomeBack    = "👋 С возвращением! Выберите действие на клавиатуре."
	msgPasswordPrompt = "🔒 Бот доступен только для сотрудников.\nВведите пароль, чтобы начать работу."
	msgAccessDenied   = "⛔️ Доступ к боту запрещён."
	msgInternalError  = "Произошла ошибка. Попробуйте позже."
)

// handleStart handles /start: greet authorized users, demand the
// password from everyone else. Banned users are stopped by the access
// middleware before they get here.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	authorized, err := h.auth.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalError)
	}

	h.sessions.Delete(userID)
	h.edits.Delete(userID)

	if !authorized {
		return c.Send(msgPasswordPrompt, &tele.ReplyMarkup{RemoveKeyboard: true})
	}

	return c.Send(msgWelcomeBack, mainMenu())
}

// handlePassword treats a text message from an unauthorized user as a
// password attempt.
func (h *Handler) handlePassword(c tele.Context, password string) error {
	userID := c.Sender().ID

	if h.auth.CheckPassword(password) {
		if err := h.auth.Authorize(userID); err != nil {
			h.logger.Error("Failed to authorize user",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return c.Send(msgInternalError)
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		return c.Send("✅ Пароль принят! Теперь вы можете пользоваться ботом.", mainMenu())
	}

	banned, err := h.auth.RegisterFailure(userID)
	if err != nil {
		h.logger.Error("Failed to register password failure",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}

	if banned {
		h.logger.Warn("User banned after failed password attempts",
			zap.Int64("user_id", userID),
		)
		return c.Send("❌ Пароль неверный. Вы навсегда заблокированы.")
	}

	remaining, err := h.auth.AttemptsRemaining(userID)
	if err != nil {
		h.logger.Error("Failed to read remaining attempts",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("❌ Пароль неверный. Попробуйте ещё раз:")
	}

	return c.Send(fmt.Sprintf("❌ Пароль неверный. Осталось попыток: %d. Попробуйте ещё раз:", remaining))
}
