// Package seed fills a database with demo users, posts, stories, likes and
// comments. It is intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"time"

	"moodrealm/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	NumStories  int
	ShouldClean bool
	// MaxDays spreads CreatedAt over the last MaxDays days.
	MaxDays int
	// RandSeed makes a run reproducible when non-zero.
	RandSeed int64
	// BcryptCost overrides bcrypt.DefaultCost; tests use bcrypt.MinCost.
	BcryptCost int
}

// Summary reports what a run created.
type Summary struct {
	Users    int
	Posts    int
	Stories  int
	Likes    int
	Reports  int
	Comments int
}

// Seed populates db according to opts.
func Seed(db *gorm.DB, opts Options) (*Summary, error) {
	log.Printf("🌱 Seeding %d users, %d posts and %d stories...", opts.NumUsers, opts.NumPosts, opts.NumStories)

	if opts.ShouldClean {
		if err := ClearAll(db); err != nil {
			return nil, fmt.Errorf("failed to clear data: %w", err)
		}
	}

	f := NewFactory(db, opts)
	summary := &Summary{}

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to create users: %w", err)
	}
	summary.Users = len(users)
	if len(users) == 0 {
		return summary, nil
	}
	log.Printf("✓ %d users created", len(users))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		posts = append(posts, f.BuildPost(f.pickUser(users)))
	}
	if len(posts) > 0 {
		if err := db.CreateInBatches(posts, 100).Error; err != nil {
			return nil, fmt.Errorf("failed to create posts: %w", err)
		}
	}
	summary.Posts = len(posts)
	log.Printf("✓ %d posts created", len(posts))

	stories := make([]*models.Story, 0, opts.NumStories)
	for i := 0; i < opts.NumStories; i++ {
		stories = append(stories, f.BuildStory(f.pickUser(users)))
	}
	if len(stories) > 0 {
		if err := db.CreateInBatches(stories, 100).Error; err != nil {
			return nil, fmt.Errorf("failed to create stories: %w", err)
		}
	}
	summary.Stories = len(stories)
	log.Printf("✓ %d stories created", len(stories))

	for _, p := range posts {
		e, err := f.Engage(models.TargetPost, p.ID, p.CreatedAt, users)
		if err != nil {
			return nil, fmt.Errorf("failed to seed engagement: %w", err)
		}
		summary.add(e)
	}
	for _, s := range stories {
		if s.Privacy == models.PrivacyPrivate {
			continue
		}
		e, err := f.Engage(models.TargetStory, s.ID, s.CreatedAt, users)
		if err != nil {
			return nil, fmt.Errorf("failed to seed engagement: %w", err)
		}
		summary.add(e)
	}
	log.Printf("✓ %d likes, %d reports and %d comments created", summary.Likes, summary.Reports, summary.Comments)

	return summary, nil
}

// ClearAll deletes every seeded table, children first.
func ClearAll(db *gorm.DB) error {
	tables := []any{
		&models.ConversationMessage{},
		&models.Conversation{},
		&models.Comment{},
		&models.Reaction{},
		&models.Story{},
		&models.Post{},
		&models.User{},
	}
	for _, t := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(t).Error; err != nil {
			return err
		}
	}
	return nil
}

// Engagement counts what Engage added to one target.
type Engagement struct {
	Likes    int
	Reports  int
	Comments int
}

func (s *Summary) add(e Engagement) {
	s.Likes += e.Likes
	s.Reports += e.Reports
	s.Comments += e.Comments
}

// maxSeedReports keeps seeded content well below the removal threshold.
const maxSeedReports = 2

// Engage adds random likes, a few reports and comments from users to one
// target. Engagement is never older than the target itself.
func (f *Factory) Engage(targetType string, targetID uint, since time.Time, users []*models.User) (Engagement, error) {
	var e Engagement

	likers := f.sample(users, f.faker.Number(0, min(len(users), 8)))
	if err := f.react(targetType, targetID, since, likers, models.ReactionLike); err != nil {
		return e, err
	}
	e.Likes = len(likers)

	if f.faker.Number(1, 10) == 1 {
		reporters := f.sample(users, f.faker.Number(1, min(len(users), maxSeedReports)))
		if err := f.react(targetType, targetID, since, reporters, models.ReactionReport); err != nil {
			return e, err
		}
		e.Reports = len(reporters)
	}

	n := f.faker.Number(0, 4)
	if n > 0 {
		rows := make([]models.Comment, 0, n)
		for i := 0; i < n; i++ {
			rows = append(rows, models.Comment{
				TargetType: targetType,
				TargetID:   targetID,
				UserID:     f.pickUser(users).ID,
				Text:       f.faker.RandomString(commentTemplates),
				CreatedAt:  f.after(since),
			})
		}
		if err := f.db.Create(&rows).Error; err != nil {
			return e, err
		}
	}
	e.Comments = n
	return e, nil
}

func (f *Factory) react(targetType string, targetID uint, since time.Time, users []*models.User, kind models.ReactionKind) error {
	if len(users) == 0 {
		return nil
	}
	reactions := make([]models.Reaction, 0, len(users))
	for _, u := range users {
		reactions = append(reactions, models.Reaction{
			TargetType: targetType,
			TargetID:   targetID,
			UserID:     u.ID,
			Kind:       kind,
			CreatedAt:  f.after(since),
		})
	}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reactions).Error
}
