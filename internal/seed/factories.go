package seed

import (
	"fmt"
	"strings"
	"time"

	"moodrealm/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	commentTemplates = []string{
		"This made my day.",
		"Needed to read this today.",
		"So relatable!",
		"Beautifully written.",
		"Sending you good vibes.",
		"I feel this deeply.",
		"Saving this one.",
		"Thank you for sharing.",
	}

	backgroundStyles = []string{
		"linear-gradient(135deg, #f6d365 0%, #fda085 100%)",
		"linear-gradient(135deg, #a1c4fd 0%, #c2e9fb 100%)",
		"linear-gradient(135deg, #fbc2eb 0%, #a6c1ee 100%)",
		"linear-gradient(135deg, #84fab0 0%, #8fd3f4 100%)",
	}

	openers = map[models.Mood][]string{
		models.MoodInspired:    {"Today I realised", "Something clicked:", "Remember this:"},
		models.MoodJoyful:      {"Little joys:", "Smiling because", "Best part of today:"},
		models.MoodGrateful:    {"Grateful for", "Thankful that", "Counting blessings:"},
		models.MoodRomantic:    {"You are", "Every time you smile", "Love is"},
		models.MoodHeartbroken: {"It still hurts that", "Letting go of", "Some days"},
		models.MoodLonely:      {"Quiet nights and", "Missing", "Alone with"},
		models.MoodCreative:    {"Sketching ideas about", "What if", "Imagine"},
		models.MoodMotivated:   {"Keep going:", "One more step toward", "No excuses,"},
		models.MoodAnxious:     {"Breathing through", "Trying not to overthink", "Worried about"},
		models.MoodFunny:       {"Plot twist:", "Me pretending", "Nobody:"},
		models.MoodNeutral:     {"Just a thought:", "Noticed that", "Anyway,"},
	}
)

// Factory builds demo entities with gofakeit.
type Factory struct {
	db           *gorm.DB
	opts         Options
	faker        *gofakeit.Faker
	now          time.Time
	passwordHash string
}

// NewFactory creates a Factory bound to db. A zero opts.RandSeed picks a
// time-based seed.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seed := opts.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 60
	}
	return &Factory{db: db, opts: opts, faker: gofakeit.New(seed), now: time.Now()}
}

// CreateUsers persists n users sharing DemoPassword.
func (f *Factory) CreateUsers(n int) ([]*models.User, error) {
	if n <= 0 {
		return nil, nil
	}
	hash, err := f.hashPassword()
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		first, last := f.faker.FirstName(), f.faker.LastName()
		users = append(users, &models.User{
			Name:      first + " " + last,
			Email:     strings.ToLower(fmt.Sprintf("%s.%s%d@example.com", first, last, i)),
			Password:  hash,
			CreatedAt: f.pastTime(),
		})
	}
	if err := f.db.CreateInBatches(users, 100).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// BuildPost returns an unsaved post by user with a random mood and form.
func (f *Factory) BuildPost(user *models.User) *models.Post {
	mood := f.mood()
	post := &models.Post{
		UserID:      user.ID,
		Content:     f.moodLine(mood),
		Mood:        mood,
		ContentType: models.ContentTypes[f.faker.Number(0, len(models.ContentTypes)-1)],
		CreatedAt:   f.pastTime(),
	}
	if f.faker.Number(1, 4) == 1 {
		style := f.faker.RandomString(backgroundStyles)
		post.BackgroundStyle = &style
	} else if f.faker.Number(1, 5) == 1 {
		img := fmt.Sprintf("https://picsum.photos/seed/%s/800/800", f.faker.UUID())
		post.BackgroundImage = &img
	}
	return post
}

// BuildStory returns an unsaved story by user. About one in five is private.
func (f *Factory) BuildStory(user *models.User) *models.Story {
	mood := f.mood()
	story := &models.Story{
		UserID:    user.ID,
		Title:     strings.TrimSuffix(f.faker.Sentence(4), "."),
		Content:   f.moodLine(mood) + "\n\n" + f.faker.Paragraph(2, 3, 8, "\n\n"),
		Mood:      mood,
		Privacy:   models.PrivacyPublic,
		CreatedAt: f.pastTime(),
	}
	if f.faker.Number(1, 5) == 1 {
		story.Privacy = models.PrivacyPrivate
	}
	if f.faker.Bool() {
		id := f.faker.UUID()
		story.CoverImage = models.CoverImage{
			URL:      fmt.Sprintf("https://picsum.photos/seed/%s/1200/600", id),
			PublicID: strings.ReplaceAll(id, "-", ""),
		}
	}
	return story
}

func (f *Factory) hashPassword() (string, error) {
	if f.passwordHash != "" {
		return f.passwordHash, nil
	}
	cost := f.opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return "", err
	}
	f.passwordHash = string(hashed)
	return f.passwordHash, nil
}

func (f *Factory) mood() models.Mood {
	return models.Moods[f.faker.Number(0, len(models.Moods)-1)]
}

func (f *Factory) moodLine(mood models.Mood) string {
	opener := f.faker.RandomString(openers[mood])
	return opener + " " + strings.ToLower(strings.TrimSuffix(f.faker.Sentence(f.faker.Number(5, 12)), ".")) + "."
}

func (f *Factory) pickUser(users []*models.User) *models.User {
	return users[f.faker.Number(0, len(users)-1)]
}

// sample returns n distinct users.
func (f *Factory) sample(users []*models.User, n int) []*models.User {
	if n <= 0 {
		return nil
	}
	idx := make([]int, len(users))
	for i := range idx {
		idx[i] = i
	}
	f.faker.ShuffleInts(idx)
	out := make([]*models.User, 0, n)
	for _, i := range idx[:n] {
		out = append(out, users[i])
	}
	return out
}

// pastTime is a random instant within the last MaxDays days.
func (f *Factory) pastTime() time.Time {
	return f.faker.DateRange(f.now.AddDate(0, 0, -f.opts.MaxDays), f.now)
}

// after is a random instant between t and now.
func (f *Factory) after(t time.Time) time.Time {
	if !t.Before(f.now) {
		return f.now
	}
	return f.faker.DateRange(t, f.now)
}
