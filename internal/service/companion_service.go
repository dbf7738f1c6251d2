package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"moodrealm/internal/companion"
	"moodrealm/internal/middleware"
	"moodrealm/internal/models"
	"moodrealm/internal/observability"
	"moodrealm/internal/repository"
)

const (
	maxChatMessageLen = 1000
	maxPromptFieldLen = 60
)

// CompanionService runs the AI companion chat and the one-shot generators.
type CompanionService struct {
	convRepo repository.ConversationRepository
	client   companion.Client
	catalog  *companion.Catalog
	timeout  time.Duration
}

func NewCompanionService(
	convRepo repository.ConversationRepository,
	client companion.Client,
	catalog *companion.Catalog,
	timeout time.Duration,
) *CompanionService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CompanionService{
		convRepo: convRepo,
		client:   client,
		catalog:  catalog,
		timeout:  timeout,
	}
}

// GetHistory returns the visible messages. A user without a conversation gets
// a single greeting that is not persisted.
func (s *CompanionService) GetHistory(ctx context.Context, userID uint) ([]models.ConversationMessage, error) {
	conv, err := s.convRepo.GetByUserID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return []models.ConversationMessage{{
				Role:      models.RoleModel,
				Content:   s.catalog.Greeting,
				Timestamp: time.Now(),
			}}, nil
		}
		return nil, err
	}
	return conv.Visible(), nil
}

// SendMessage persists the user's message, asks the model for a reply and
// persists that too. The user's message stays stored when the model fails.
func (s *CompanionService) SendMessage(ctx context.Context, userID uint, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", models.NewValidationError("New message is required")
	}
	if utf8.RuneCountInString(text) > maxChatMessageLen {
		return "", models.NewValidationError("Message must be at most 1000 characters")
	}

	conv, err := s.convRepo.GetOrCreate(ctx, userID, s.catalog.PrimingMessages())
	if err != nil {
		return "", err
	}

	userMsg := models.ConversationMessage{Role: models.RoleUser, Content: text}
	if err := s.convRepo.AppendMessage(ctx, conv.ID, &userMsg); err != nil {
		return "", err
	}

	turns := make([]companion.Turn, 0, len(conv.Messages)+1)
	for _, m := range conv.Messages {
		turns = append(turns, companion.Turn{Role: m.Role, Text: m.Content})
	}
	turns = append(turns, companion.Turn{Role: models.RoleUser, Text: text})

	reply, err := s.generate(ctx, "chat", turns)
	if err != nil {
		return "", models.NewExternalServiceError("Failed to get a response from the AI companion", err)
	}

	modelMsg := models.ConversationMessage{Role: models.RoleModel, Content: reply}
	if err := s.convRepo.AppendMessage(ctx, conv.ID, &modelMsg); err != nil {
		return "", err
	}
	return reply, nil
}

// ClearHistory resets the conversation to its priming pair.
func (s *CompanionService) ClearHistory(ctx context.Context, userID uint) error {
	return s.convRepo.Reset(ctx, userID, s.catalog.PrimingMessages())
}

func (s *CompanionService) GenerateContent(ctx context.Context, mood, contentType string) (string, error) {
	m, ok := models.ParseMood(mood)
	if !ok {
		return "", models.NewValidationError("Invalid mood")
	}
	ct, ok := models.ParseContentType(contentType)
	if !ok {
		return "", models.NewValidationError("Invalid content type")
	}

	text, err := s.generate(ctx, "content", []companion.Turn{{Role: models.RoleUser, Text: s.catalog.ContentPrompt(m, ct)}})
	if err != nil {
		return "", models.NewExternalServiceError("Failed to generate content", err)
	}
	return text, nil
}

func (s *CompanionService) GenerateQuote(ctx context.Context, mood, category string) (string, error) {
	mood = strings.TrimSpace(mood)
	category = strings.TrimSpace(category)
	if mood == "" {
		return "", models.NewValidationError("Mood is required")
	}
	if category == "" {
		return "", models.NewValidationError("Category is required")
	}
	if utf8.RuneCountInString(mood) > maxPromptFieldLen || utf8.RuneCountInString(category) > maxPromptFieldLen {
		return "", models.NewValidationError("Mood and category must be at most 60 characters")
	}

	text, err := s.generate(ctx, "quote", []companion.Turn{{Role: models.RoleUser, Text: s.catalog.QuotePrompt(mood, category)}})
	if err != nil {
		return "", models.NewExternalServiceError("Failed to generate quote", err)
	}
	return text, nil
}

// generate bounds the upstream call by the configured timeout and records it.
func (s *CompanionService) generate(ctx context.Context, operation string, turns []companion.Turn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ctx, span := observability.StartClientSpan(ctx, "gemini", operation)
	start := time.Now()

	text, err := s.client.Generate(ctx, turns)
	if err == nil && strings.TrimSpace(text) == "" {
		err = companion.ErrEmptyResponse
	}

	observability.AILatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	observability.AICalls.WithLabelValues(operation, outcomeOf(ctx, err)).Inc()
	observability.EndSpan(span, err)

	if err != nil {
		middleware.Logger.WarnContext(ctx, "generative model call failed",
			"operation", operation,
			"error", err.Error(),
		)
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func outcomeOf(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return observability.OutcomeSuccess
	case errors.Is(err, companion.ErrEmptyResponse):
		return observability.OutcomeEmpty
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return observability.OutcomeTimeout
	default:
		return observability.OutcomeError
	}
}
