package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"moodrealm/internal/models"
	"moodrealm/internal/repository"
)

const (
	maxStoryTitleLen   = 120
	maxStoryContentLen = 5000
)

type StoryService struct {
	storyRepo    repository.StoryRepository
	reactionRepo repository.ReactionRepository
}

type CreateStoryInput struct {
	UserID             uint
	Title              string
	Content            string
	Mood               string
	Privacy            string
	CoverImageURL      string
	CoverImagePublicID string
}

func NewStoryService(
	storyRepo repository.StoryRepository,
	reactionRepo repository.ReactionRepository,
) *StoryService {
	return &StoryService{
		storyRepo:    storyRepo,
		reactionRepo: reactionRepo,
	}
}

func (s *StoryService) CreateStory(ctx context.Context, in CreateStoryInput) (*models.Story, error) {
	title := strings.TrimSpace(in.Title)
	if utf8.RuneCountInString(title) > maxStoryTitleLen {
		return nil, models.NewValidationError("Title must be at most 120 characters")
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(content) > maxStoryContentLen {
		return nil, models.NewValidationError("Content must be at most 5000 characters")
	}

	mood := models.MoodNeutral
	if strings.TrimSpace(in.Mood) != "" {
		parsed, ok := models.ParseMood(in.Mood)
		if !ok {
			return nil, models.NewValidationError("Invalid mood")
		}
		mood = parsed
	}
	privacy, ok := models.ParsePrivacy(in.Privacy)
	if !ok {
		return nil, models.NewValidationError("Privacy must be public or private")
	}

	story := &models.Story{
		UserID:  in.UserID,
		Title:   title,
		Content: content,
		Mood:    mood,
		Privacy: privacy,
		CoverImage: models.CoverImage{
			URL:      strings.TrimSpace(in.CoverImageURL),
			PublicID: strings.TrimSpace(in.CoverImagePublicID),
		},
	}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// StoryPage is one page of public stories.
type StoryPage struct {
	Stories []*models.Story
	Page    int
	HasMore bool
}

// ListPublic returns one page of public stories, newest first.
func (s *StoryService) ListPublic(ctx context.Context, page int) (*StoryPage, error) {
	page, offset := pageOffset(page)
	stories, err := s.storyRepo.ListPublic(ctx, FeedPageSize, offset)
	if err != nil {
		return nil, err
	}
	return &StoryPage{Stories: stories, Page: page, HasMore: len(stories) == FeedPageSize}, nil
}

func (s *StoryService) ListMine(ctx context.Context, userID uint) ([]*models.Story, error) {
	return s.storyRepo.ListByUser(ctx, userID)
}

// GetStory returns the story if requesterID may see it.
func (s *StoryService) GetStory(ctx context.Context, storyID, requesterID uint) (*models.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if !story.VisibleTo(requesterID) {
		return nil, models.NewForbiddenError("Not allowed")
	}
	return story, nil
}

func (s *StoryService) DeleteStory(ctx context.Context, storyID, userID uint) error {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return err
	}
	if !story.OwnedBy(userID) {
		return models.NewForbiddenError("Not allowed")
	}
	return s.storyRepo.Delete(ctx, story.ID)
}

func (s *StoryService) ToggleLike(ctx context.Context, storyID, userID uint) (int64, error) {
	if _, err := s.GetStory(ctx, storyID, userID); err != nil {
		return 0, err
	}
	return s.reactionRepo.Toggle(ctx, models.TargetStory, storyID, userID, models.ReactionLike)
}

func (s *StoryService) ToggleReport(ctx context.Context, storyID, userID uint) (*ToggleResult, error) {
	if _, err := s.GetStory(ctx, storyID, userID); err != nil {
		return nil, err
	}
	return toggleReport(ctx, s.reactionRepo, models.TargetStory, storyID, userID, s.storyRepo.Delete)
}

// CanComment is the CommentGuard for stories: private stories accept comments from their owner only.
func (s *StoryService) CanComment(ctx context.Context, storyID, userID uint) error {
	_, err := s.GetStory(ctx, storyID, userID)
	return err
}
