package models

import "strings"

// Mood is the emotional tag attached to posts and stories.
type Mood string

const (
	MoodInspired    Mood = "Inspired"
	MoodJoyful      Mood = "Joyful"
	MoodGrateful    Mood = "Grateful"
	MoodRomantic    Mood = "Romantic"
	MoodHeartbroken Mood = "Heartbroken"
	MoodLonely      Mood = "Lonely"
	MoodCreative    Mood = "Creative"
	MoodMotivated   Mood = "Motivated"
	MoodAnxious     Mood = "Anxious"
	MoodFunny       Mood = "Funny"
	MoodNeutral     Mood = "Neutral"
)

// MoodAll is the feed filter sentinel that disables mood filtering.
const MoodAll = "all"

// Moods lists every valid mood in display order.
var Moods = []Mood{
	MoodInspired, MoodJoyful, MoodGrateful, MoodRomantic, MoodHeartbroken, MoodLonely,
	MoodCreative, MoodMotivated, MoodAnxious, MoodFunny, MoodNeutral,
}

// ContentType is the literary form of a post.
type ContentType string

const (
	ContentQuote      ContentType = "Quote"
	ContentLifeLesson ContentType = "Life Lesson"
	ContentStory      ContentType = "Story"
	ContentFlirtyLine ContentType = "Flirty Line"
	ContentPoem       ContentType = "Poem"
	ContentThought    ContentType = "Thought"
)

// ContentTypes lists every valid content type.
var ContentTypes = []ContentType{
	ContentQuote, ContentLifeLesson, ContentStory, ContentFlirtyLine, ContentPoem, ContentThought,
}

// ParseMood returns the canonical mood for s (case-insensitive).
func ParseMood(s string) (Mood, bool) {
	s = strings.TrimSpace(s)
	for _, m := range Moods {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	return "", false
}

// ParseContentType returns the canonical content type for s (case-insensitive).
func ParseContentType(s string) (ContentType, bool) {
	s = strings.TrimSpace(s)
	for _, ct := range ContentTypes {
		if strings.EqualFold(string(ct), s) {
			return ct, true
		}
	}
	return "", false
}

// Privacy controls story visibility.
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyPrivate Privacy = "private"
)

// ParsePrivacy defaults to public when s is empty.
func ParsePrivacy(s string) (Privacy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(PrivacyPublic):
		return PrivacyPublic, true
	case string(PrivacyPrivate):
		return PrivacyPrivate, true
	default:
		return "", false
	}
}

// FeedSort selects the ordering of the post feed.
type FeedSort string

const (
	SortLatest   FeedSort = "latest"
	SortLikes    FeedSort = "likes"
	SortComments FeedSort = "comments"
	SortRandom   FeedSort = "random"
)

// ParseFeedSort falls back to latest for empty or unknown values.
func ParseFeedSort(s string) FeedSort {
	switch FeedSort(strings.ToLower(strings.TrimSpace(s))) {
	case SortLikes:
		return SortLikes
	case SortComments:
		return SortComments
	case SortRandom:
		return SortRandom
	default:
		return SortLatest
	}
}
