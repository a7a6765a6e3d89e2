package telegram

import (
	"complaintbox/backend/internal/complaint"
	"complaintbox/backend/internal/models"
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Repository is the complaint access the bot needs.
type Repository interface {
	ListByStatus(ctx context.Context, filter string) ([]models.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) ([]models.Complaint, error)
}

// BotService answers faculty commands in the configured faculty chat.
// Messages from any other chat are ignored.
type BotService struct {
	BotAPI *tgbotapi.BotAPI
	Sender Sender
	Repo   Repository
	ChatID int64

	logger *zap.Logger
}

// NewBotService authorizes the bot token and returns a service bound to the
// faculty chat.
func NewBotService(token string, chatID int64, repo Repository, logger *zap.Logger) (*BotService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Authorized on Telegram account", zap.String("username", bot.Self.UserName))

	return &BotService{BotAPI: bot, Sender: bot, Repo: repo, ChatID: chatID, logger: logger}, nil
}

// Run is the main loop for receiving Telegram updates. It returns when ctx is
// cancelled.
func (s *BotService) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := s.BotAPI.GetUpdatesChan(u)
	defer s.BotAPI.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			s.HandleUpdate(ctx, &update)
		}
	}
}

// HandleUpdate processes a single update.
func (s *BotService) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() || msg.Chat.ID != s.ChatID {
		return
	}

	var reply string
	switch msg.Command() {
	case "list":
		reply = s.handleList(ctx, strings.TrimSpace(msg.CommandArguments()))
	case "status":
		reply = s.handleStatus(ctx, strings.TrimSpace(msg.CommandArguments()))
	default:
		reply = "Commands: /list [Pending|In Review|Resolved], /status <id> <Pending|In Review|Resolved>"
	}

	if _, err := s.Sender.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		s.logger.Error("Failed to send bot reply", zap.String("command", msg.Command()), zap.Error(err))
	}
}

func (s *BotService) handleList(ctx context.Context, filter string) string {
	complaints, err := s.Repo.ListByStatus(ctx, filter)
	if errors.Is(err, complaint.ErrInvalidInput) {
		return fmt.Sprintf("Unknown status %q.", filter)
	}
	if err != nil {
		s.logger.Error("Failed to list complaints", zap.Error(err))
		return "Could not load complaints."
	}
	if len(complaints) == 0 {
		if filter == "" || filter == complaint.StatusFilterAll {
			return "No complaints have been submitted yet."
		}
		return fmt.Sprintf("No %s complaints found.", strings.ToLower(filter))
	}

	var b strings.Builder
	for _, c := range complaints {
		fmt.Fprintf(&b, "%s [%s] %s (%s): %s\n", c.ID, c.Status, c.Category, c.Date, preview(c.Description, 60))
	}
	return strings.TrimRight(b.String(), "\n")
}

// handleStatus parses "<id> <status>", where status may contain spaces.
func (s *BotService) handleStatus(ctx context.Context, args string) string {
	id, rawStatus, found := strings.Cut(args, " ")
	if !found || id == "" {
		return "Usage: /status <id> <Pending|In Review|Resolved>"
	}
	status := models.Status(strings.TrimSpace(rawStatus))

	complaints, err := s.Repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, complaint.ErrInvalidInput) {
		return fmt.Sprintf("Unknown status %q.", status)
	}
	if err != nil {
		s.logger.Error("Failed to update complaint status", zap.String("complaint_id", id), zap.Error(err))
		return "Could not update the complaint."
	}

	for _, c := range complaints {
		if c.ID == id {
			return fmt.Sprintf("%s is now %s.", id, status)
		}
	}
	return fmt.Sprintf("No complaint with id %s.", id)
}
