package service

import (
	"context"
	"strings"
	"testing"

	"moodrealm/internal/models"
	"moodrealm/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStoryService(db *gorm.DB) *StoryService {
	return NewStoryService(
		repository.NewStoryRepository(db),
		repository.NewReactionRepository(db),
	)
}

func newStoryComments(db *gorm.DB, stories *StoryService) *CommentService {
	return NewCommentService(repository.NewCommentRepository(db), map[string]CommentGuard{
		models.TargetStory: stories.CanComment,
	})
}

func TestStoryService_CreateStory(t *testing.T) {
	db := setupTestDB(t)
	svc := newStoryService(db)
	owner := createUser(t, db, "writer")
	ctx := context.Background()

	t.Run("Defaults", func(t *testing.T) {
		story, err := svc.CreateStory(ctx, CreateStoryInput{UserID: owner.ID, Content: "once upon a time"})
		require.NoError(t, err)
		assert.Equal(t, models.MoodNeutral, story.Mood)
		assert.Equal(t, models.PrivacyPublic, story.Privacy)
		assert.Equal(t, "writer", story.User.Name)
	})

	t.Run("Cover Image", func(t *testing.T) {
		story, err := svc.CreateStory(ctx, CreateStoryInput{
			UserID: owner.ID, Content: "c", Privacy: "Private",
			CoverImageURL: "http://localhost/media/images/a.webp", CoverImagePublicID: "a",
		})
		require.NoError(t, err)
		assert.Equal(t, models.PrivacyPrivate, story.Privacy)
		assert.Equal(t, "a", story.CoverImage.PublicID)
	})

	invalid := []struct {
		name    string
		in      CreateStoryInput
		wantMsg string
	}{
		{"Missing Content", CreateStoryInput{UserID: owner.ID}, "Content is required"},
		{"Long Title", CreateStoryInput{UserID: owner.ID, Title: strings.Repeat("t", 121), Content: "c"}, "Title must be at most 120 characters"},
		{"Bad Mood", CreateStoryInput{UserID: owner.ID, Content: "c", Mood: "Sleepy"}, "Invalid mood"},
		{"Bad Privacy", CreateStoryInput{UserID: owner.ID, Content: "c", Privacy: "friends"}, "Privacy must be public or private"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateStory(ctx, tt.in)
			assert.Equal(t, 400, models.StatusCode(err))
			assert.Equal(t, tt.wantMsg, models.PublicMessage(err))
		})
	}
}

func TestStoryService_Privacy(t *testing.T) {
	db := setupTestDB(t)
	svc := newStoryService(db)
	owner := createUser(t, db, "owner")
	other := createUser(t, db, "other")
	ctx := context.Background()

	private, err := svc.CreateStory(ctx, CreateStoryInput{UserID: owner.ID, Content: "secret", Privacy: "private"})
	require.NoError(t, err)
	public, err := svc.CreateStory(ctx, CreateStoryInput{UserID: owner.ID, Content: "open"})
	require.NoError(t, err)

	_, err = svc.GetStory(ctx, private.ID, other.ID)
	assert.Equal(t, 403, models.StatusCode(err))

	got, err := svc.GetStory(ctx, private.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Content)

	_, err = svc.ToggleLike(ctx, private.ID, other.ID)
	assert.Equal(t, 403, models.StatusCode(err))
	_, err = newStoryComments(db, svc).CreateComment(ctx, CreateCommentInput{
		UserID: other.ID, TargetType: models.TargetStory, TargetID: private.ID, Text: "hi",
	})
	assert.Equal(t, 403, models.StatusCode(err))

	list, err := svc.ListPublic(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list.Stories, 1)
	assert.Equal(t, public.ID, list.Stories[0].ID)
	assert.False(t, list.HasMore)

	mine, err := svc.ListMine(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestStoryService_DeleteStory(t *testing.T) {
	db := setupTestDB(t)
	svc := newStoryService(db)
	owner := createUser(t, db, "owner")
	other := createUser(t, db, "other")
	ctx := context.Background()

	story, err := svc.CreateStory(ctx, CreateStoryInput{UserID: owner.ID, Content: "c"})
	require.NoError(t, err)

	err = svc.DeleteStory(ctx, story.ID, other.ID)
	assert.Equal(t, "Not allowed", models.PublicMessage(err))

	require.NoError(t, svc.DeleteStory(ctx, story.ID, owner.ID))
	_, err = svc.GetStory(ctx, story.ID, owner.ID)
	assert.Equal(t, 404, models.StatusCode(err))
}

func TestStoryService_ReactionsAndComments(t *testing.T) {
	db := setupTestDB(t)
	svc := newStoryService(db)
	owner := createUser(t, db, "owner")
	ctx := context.Background()

	story, err := svc.CreateStory(ctx, CreateStoryInput{UserID: owner.ID, Content: "c"})
	require.NoError(t, err)

	likes, err := svc.ToggleLike(ctx, story.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	comments, err := newStoryComments(db, svc).CreateComment(ctx, CreateCommentInput{
		UserID: owner.ID, TargetType: models.TargetStory, TargetID: story.ID, Text: " lovely ",
	})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "lovely", comments[0].Text)
	assert.Equal(t, "owner", comments[0].User.Name)

	var last *ToggleResult
	for i := 0; i < models.ReportThreshold; i++ {
		reporter := createUser(t, db, "reporter"+strings.Repeat("x", i))
		last, err = svc.ToggleReport(ctx, story.ID, reporter.ID)
		require.NoError(t, err)
	}
	assert.True(t, last.Deleted)
	assert.Equal(t, int64(models.ReportThreshold), last.Count)

	_, err = svc.GetStory(ctx, story.ID, owner.ID)
	assert.Equal(t, 404, models.StatusCode(err))

	var remaining int64
	require.NoError(t, db.Model(&models.Comment{}).Where("target_type = ? AND target_id = ?", models.TargetStory, story.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestStoryService_ListPublicPages(t *testing.T) {
	db := setupTestDB(t)
	svc := newStoryService(db)
	owner := createUser(t, db, "owner")
	ctx := context.Background()

	for i := 0; i < FeedPageSize+2; i++ {
		_, err := svc.CreateStory(ctx, CreateStoryInput{UserID: owner.ID, Content: "story"})
		require.NoError(t, err)
	}

	first, err := svc.ListPublic(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Page)
	assert.Len(t, first.Stories, FeedPageSize)
	assert.True(t, first.HasMore)

	second, err := svc.ListPublic(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, second.Stories, 2)
	assert.False(t, second.HasMore)
}
