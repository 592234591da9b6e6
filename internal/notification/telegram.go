package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, attendee pushes disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPromoted(ctx context.Context, attendee *domain.Attendee, experience *domain.Experience) {
	text := fmt.Sprintf(
		"*You're up!*\n\n"+"Experience: %s\n"+"Head to the booth entrance and show your entry code to the operator.",
		experience.Title,
	)
	n.send(ctx, attendee.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyNoShow(ctx context.Context, attendee *domain.Attendee, experience *domain.Experience) {
	text := fmt.Sprintf(
		"*Reservation released*\n\n"+"Experience: %s\n"+"The slot ended at %s (UTC) without a check-in.",
		experience.Title, experience.EndsAt.UTC().Format("02.01.2006 15:04"),
	)
	n.send(ctx, attendee.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCancelled(ctx context.Context, attendee *domain.Attendee, experience *domain.Experience) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\n"+"Experience: %s",
		experience.Title,
	)
	n.send(ctx, attendee.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("push skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("push skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("push skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram push",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
