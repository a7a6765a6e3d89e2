// Package telegram connects the complaint box to a faculty Telegram chat: new
// complaints are announced there, and faculty can list complaints and change
// their status with bot commands.
package telegram

import (
	"complaintbox/backend/internal/config"
	"complaintbox/backend/internal/localization"
	"complaintbox/backend/internal/models"
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the part of *tgbotapi.BotAPI the package uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier posts a message to the faculty chat for every new complaint. It
// implements complaint.Notifier.
type Notifier struct {
	Sender    Sender
	ChatID    int64
	Localizer *localization.Localizer
	Language  string

	logger *zap.Logger
}

// NewNotifier creates a faculty notifier.
func NewNotifier(sender Sender, chatID int64, localizer *localization.Localizer, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{
		Sender:    sender,
		ChatID:    chatID,
		Localizer: localizer,
		Language:  localization.DefaultLanguage,
		logger:    logger,
	}
}

// ComplaintCreated announces c. Anonymous complaints never name a submitter.
func (n *Notifier) ComplaintCreated(_ context.Context, c models.Complaint) error {
	msg := tgbotapi.NewMessage(n.ChatID, n.formatComplaint(c))
	if _, err := n.Sender.Send(msg); err != nil {
		return fmt.Errorf("send telegram notification: %w", err)
	}
	n.logger.Debug("Faculty notified", zap.String("complaint_id", c.ID))
	return nil
}

func (n *Notifier) formatComplaint(c models.Complaint) string {
	submitterKey := "notify.submitter_named"
	if c.Anonymous {
		submitterKey = "notify.submitter_anonymous"
	}
	return n.Localizer.Format(n.Language, "notify.new_complaint",
		c.Category, c.ID,
		n.Localizer.GetString(n.Language, submitterKey),
		preview(c.Description, config.NotificationPreviewLen))
}

// preview truncates s to at most limit runes.
func preview(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
