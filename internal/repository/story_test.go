package repository

import (
	"context"
	"testing"
	"time"

	"moodrealm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryRepository_PublicAndOwnerListings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStoryRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "owner")
	base := time.Now().Add(-time.Hour)

	public := &models.Story{UserID: owner.ID, Title: "Open", Content: "c", Mood: models.MoodJoyful, Privacy: models.PrivacyPublic, CreatedAt: base}
	private := &models.Story{UserID: owner.ID, Title: "Diary", Content: "c", Mood: models.MoodLonely, Privacy: models.PrivacyPrivate, CreatedAt: base.Add(time.Minute),
		CoverImage: models.CoverImage{URL: "/media/x.webp", PublicID: "x"}}
	require.NoError(t, repo.Create(ctx, public))
	require.NoError(t, repo.Create(ctx, private))
	assert.Equal(t, "owner", private.User.Name)
	assert.Equal(t, "x", private.CoverImage.PublicID)

	listed, err := repo.ListPublic(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, public.ID, listed[0].ID)

	mine, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, private.ID, mine[0].ID)
}

func TestStoryRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStoryRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "owner")
	story := &models.Story{UserID: owner.ID, Content: "c", Mood: models.MoodNeutral, Privacy: models.PrivacyPublic}
	require.NoError(t, repo.Create(ctx, story))
	_, err := NewReactionRepository(db).Toggle(ctx, models.TargetStory, story.ID, owner.ID, models.ReactionLike)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, story.ID))
	_, err = repo.GetByID(ctx, story.ID)
	assert.Equal(t, 404, models.StatusCode(err))

	var remaining int64
	db.Model(&models.Reaction{}).Where("target_type = ?", models.TargetStory).Count(&remaining)
	assert.Zero(t, remaining)
}
