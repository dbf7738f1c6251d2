// Package service implements the domain operations behind the HTTP handlers.
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"moodrealm/internal/models"
	"moodrealm/internal/repository"
)

const maxPostContentLen = 500

type PostService struct {
	postRepo     repository.PostRepository
	reactionRepo repository.ReactionRepository
}

type CreatePostInput struct {
	UserID          uint
	Content         string
	Mood            string
	ContentType     string
	BackgroundImage string
	BackgroundStyle string
}

type ListFeedInput struct {
	Mood        string
	ContentType string
	Sort        string
	Page        int
}

// FeedPage is one page of the feed. HasMore is always false for random sorts.
type FeedPage struct {
	Posts   []*models.Post
	Page    int
	HasMore bool
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(
	postRepo repository.PostRepository,
	reactionRepo repository.ReactionRepository,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		reactionRepo: reactionRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(content) > maxPostContentLen {
		return nil, models.NewValidationError("Content must be at most 500 characters")
	}
	mood, ok := models.ParseMood(in.Mood)
	if !ok {
		return nil, models.NewValidationError("Invalid mood")
	}
	contentType, ok := models.ParseContentType(in.ContentType)
	if !ok {
		return nil, models.NewValidationError("Invalid content type")
	}

	post := &models.Post{
		UserID:          in.UserID,
		Content:         content,
		Mood:            mood,
		ContentType:     contentType,
		BackgroundImage: optional(in.BackgroundImage),
		BackgroundStyle: optional(in.BackgroundStyle),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) ListFeed(ctx context.Context, in ListFeedInput) (*FeedPage, error) {
	var filter repository.FeedFilter

	if m := strings.TrimSpace(in.Mood); m != "" && !strings.EqualFold(m, models.MoodAll) {
		mood, ok := models.ParseMood(m)
		if !ok {
			return nil, models.NewValidationError("Invalid mood")
		}
		filter.Mood = mood
	}
	if ct := strings.TrimSpace(in.ContentType); ct != "" {
		contentType, ok := models.ParseContentType(ct)
		if !ok {
			return nil, models.NewValidationError("Invalid content type")
		}
		filter.ContentType = contentType
	}

	sort := models.ParseFeedSort(in.Sort)
	page, offset := pageOffset(in.Page)
	if sort == models.SortRandom {
		page, offset = 1, 0
	}

	posts, err := s.postRepo.ListFeed(ctx, filter, sort, FeedPageSize, offset)
	if err != nil {
		return nil, err
	}

	return &FeedPage{
		Posts:   posts,
		Page:    page,
		HasMore: sort != models.SortRandom && len(posts) == FeedPageSize,
	}, nil
}

func (s *PostService) ListUserPosts(ctx context.Context, userID uint, page int) (*FeedPage, error) {
	page, offset := pageOffset(page)
	posts, err := s.postRepo.ListByUser(ctx, userID, FeedPageSize, offset)
	if err != nil {
		return nil, err
	}
	return &FeedPage{Posts: posts, Page: page, HasMore: len(posts) == FeedPageSize}, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if !post.OwnedBy(in.UserID) {
		return models.NewForbiddenError("Not allowed")
	}
	return s.postRepo.Delete(ctx, post.ID)
}

// ToggleLike flips the user's like and returns the new like count.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID uint) (int64, error) {
	return s.reactionRepo.Toggle(ctx, models.TargetPost, postID, userID, models.ReactionLike)
}

// ToggleReport flips the user's report; the post is deleted once it has ReportThreshold reporters.
func (s *PostService) ToggleReport(ctx context.Context, postID, userID uint) (*ToggleResult, error) {
	return toggleReport(ctx, s.reactionRepo, models.TargetPost, postID, userID, s.postRepo.Delete)
}

// CanComment is the CommentGuard for posts: any signed-in user may comment on an existing post.
func (s *PostService) CanComment(ctx context.Context, postID, _ uint) error {
	_, err := s.postRepo.GetByID(ctx, postID)
	return err
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
