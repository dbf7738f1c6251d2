package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"moodrealm/internal/models"
	"moodrealm/internal/repository"
)

const maxCommentLen = 280

// CommentGuard returns nil when userID may comment on targetID, or the target's
// NotFound or Forbidden error otherwise.
type CommentGuard func(ctx context.Context, targetID, userID uint) error

// CommentService appends to and lists the comment threads of posts and stories.
type CommentService struct {
	commentRepo repository.CommentRepository
	guards      map[string]CommentGuard
}

type CreateCommentInput struct {
	UserID     uint
	TargetType string
	TargetID   uint
	Text       string
}

// NewCommentService registers one guard per commentable target type.
func NewCommentService(commentRepo repository.CommentRepository, guards map[string]CommentGuard) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		guards:      guards,
	}
}

// CreateComment appends a comment and returns the target's full comment list.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) ([]models.Comment, error) {
	guard, ok := s.guards[in.TargetType]
	if !ok {
		return nil, models.NewValidationError("Invalid target type")
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if utf8.RuneCountInString(text) > maxCommentLen {
		return nil, models.NewValidationError("Comment must be at most 280 characters")
	}

	if err := guard(ctx, in.TargetID, in.UserID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		UserID:     in.UserID,
		Text:       text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByTarget(ctx, in.TargetType, in.TargetID)
}

// ListComments returns the target's comments oldest first.
func (s *CommentService) ListComments(ctx context.Context, targetType string, targetID, userID uint) ([]models.Comment, error) {
	guard, ok := s.guards[targetType]
	if !ok {
		return nil, models.NewValidationError("Invalid target type")
	}
	if err := guard(ctx, targetID, userID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByTarget(ctx, targetType, targetID)
}
