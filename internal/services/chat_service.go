package services

import (
	"context"
	"dietai/internal/models"
	"dietai/internal/openai"
	"dietai/internal/repository"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	DefaultChatHistoryLimit = 50
	MaxChatHistoryLimit     = 200
	maxChatMessageLen       = 2000
)

var (
	ErrChatUnavailable = errors.New("chat assistant is not configured")
	ErrChatFailed      = errors.New("chat completion failed")
)

type ChatCompleter interface {
	SendMessage(ctx context.Context, message string) (string, openai.TokenUsage, error)
}

type ChatService struct {
	client ChatCompleter
	repo   repository.ChatMessageRepository
	now    func() time.Time
	log    *zap.Logger
}

// NewChatService accepts a nil client; Send then fails with ErrChatUnavailable.
func NewChatService(client ChatCompleter, repo repository.ChatMessageRepository, log *zap.Logger) *ChatService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatService{client: client, repo: repo, now: time.Now, log: log}
}

func (s *ChatService) WithClock(now func() time.Time) *ChatService {
	s.now = now
	return s
}

// Send asks the assistant a single question. Both sides of the exchange are
// stored only when the assistant answered.
func (s *ChatService) Send(ctx context.Context, userID uint, message string) (*models.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, invalidInput("message is required")
	}
	if utf8.RuneCountInString(message) > maxChatMessageLen {
		return nil, invalidInput("message must be at most %d characters", maxChatMessageLen)
	}
	if s.client == nil {
		return nil, ErrChatUnavailable
	}

	askedAt := s.now().UTC()
	answer, usage, err := s.client.SendMessage(ctx, message)
	if err != nil {
		s.log.Error("Chat completion failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrChatFailed, err)
	}

	s.log.Debug("Chat completion",
		zap.Uint("user_id", userID),
		zap.Int("prompt_tokens", usage.PromptTokens),
		zap.Int("completion_tokens", usage.CompletionTokens),
	)

	question := &models.ChatMessage{UserID: userID, Role: models.ChatRoleUser, Content: message, CreatedAt: askedAt}
	reply := &models.ChatMessage{UserID: userID, Role: models.ChatRoleAssistant, Content: answer, CreatedAt: s.now().UTC()}
	if err := s.repo.Create(ctx, question, reply); err != nil {
		// the user still gets the answer; only the history misses it
		s.log.Error("Failed to store chat messages", zap.Uint("user_id", userID), zap.Error(err))
	}

	return &models.ChatReply{Question: *question, Answer: *reply}, nil
}

// History returns up to limit recent messages, oldest first.
func (s *ChatService) History(ctx context.Context, userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultChatHistoryLimit
	}
	if limit > MaxChatHistoryLimit {
		limit = MaxChatHistoryLimit
	}

	messages, err := s.repo.FindRecentByUserID(ctx, userID, limit)
	if err != nil {
		s.log.Error("Failed to load chat history", zap.Uint("user_id", userID), zap.Error(err))
		return nil, storageError("load chat history", err)
	}
	return messages, nil
}
