package handler

import (
	"utmbot/internal/domain"
	"utmbot/internal/service"
	"utmbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot     *tele.Bot
	auth    *service.AuthService
	catalog *service.CatalogService
	links   *service.LinkService
	logger  *zap.Logger

	// Per-user conversation state (in-memory, lost on restart)
	sessions *session.Store[domain.Session]
	edits    *session.Store[domain.EditSession]
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	auth *service.AuthService,
	catalog *service.CatalogService,
	links *service.LinkService,
	sessions *session.Store[domain.Session],
	edits *session.Store[domain.EditSession],
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		auth:     auth,
		catalog:  catalog,
		links:    links,
		sessions: sessions,
		edits:    edits,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/add", h.handleAdd)
	h.bot.Handle("/history", h.handleHistory)

	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Main reply keyboard buttons
const (
	btnSendLinkText = "Отправить ссылку"
	btnHistoryText  = "Посмотреть историю"
)

// mainMenu returns the persistent reply keyboard
func mainMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(btnSendLinkText)),
		menu.Row(menu.Text(btnHistoryText)),
	)
	return menu
}

// callbackBtn builds an inline button carrying a raw callback token
func callbackBtn(text string, cb domain.Callback) tele.Btn {
	return tele.Btn{Text: text, Data: cb.Encode()}
}
