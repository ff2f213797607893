package middleware

import (
	"utmbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AccessMiddleware blocks banned users outright and keeps unauthorized
// users on the password screen. Plain text from an unauthorized user is
// let through so the handler can treat it as a password attempt.
func AccessMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			banned, err := authService.IsBanned(userID)
			if err != nil {
				logger.Error("Failed to check ban in middleware", zap.Error(err))
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}
			if banned {
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{
						Text:      "⛔️ Доступ к боту запрещён.",
						ShowAlert: true,
					})
				}
				return c.Send("⛔️ Доступ к боту запрещён.")
			}

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}
			if authorized {
				return next(c)
			}

			// /start prompts for the password, plain text is the
			// password attempt itself
			if c.Callback() == nil && (c.Text() == "/start" || !isCommand(c.Text())) {
				return next(c)
			}

			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{
					Text:      "Сначала введите пароль.",
					ShowAlert: true,
				})
			}
			return c.Send("🔐 Введите пароль для доступа к боту:")
		}
	}
}

func isCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
