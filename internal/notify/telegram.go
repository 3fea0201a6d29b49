package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the part of the bot API used for reminders
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier sends reminders to the user's Telegram chat
type TelegramNotifier struct {
	bot Sender
	log *zap.Logger
}

// NewTelegramNotifier connects to the bot API with token
func NewTelegramNotifier(token string, log *zap.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	log.Info("telegram notifier authorized", zap.String("account", bot.Self.UserName))
	return NewTelegramNotifierWithSender(bot, log), nil
}

// NewTelegramNotifierWithSender wraps an existing sender
func NewTelegramNotifierWithSender(bot Sender, log *zap.Logger) *TelegramNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &TelegramNotifier{bot: bot, log: log}
}

func (n *TelegramNotifier) Notify(ctx context.Context, r Reminder) error {
	if r.User.TelegramChatID == 0 {
		return fmt.Errorf("telegram: %w", ErrNoAddress)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(r.User.TelegramChatID, fmt.Sprintf("🔔 %s\n\n%s", Subject(r), Text(r)))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram reminder to user %d: %w", r.User.ID, err)
	}

	n.log.Debug("telegram reminder sent", zap.Int64("user_id", r.User.ID), zap.Int("due", r.DueCount))
	return nil
}
