package validation

import (
	"strings"
	"testing"

	"moodrealm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Content     string `json:"content" validate:"notblank,max=10" msg:"Content is required"`
	Mood        string `json:"mood" validate:"required,mood" msg:"Mood is required"`
	ContentType string `json:"contentType" validate:"required,contenttype"`
	Privacy     string `json:"privacy" validate:"omitempty,privacy"`
}

func TestStruct(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		payload samplePayload
		wantMsg string
	}{
		{"Valid", samplePayload{Content: "hi", Mood: "Joyful", ContentType: "Quote"}, ""},
		{"Case Insensitive Enums", samplePayload{Content: "hi", Mood: "joyful", ContentType: "life lesson"}, ""},
		{"Blank Content", samplePayload{Content: "   ", Mood: "Joyful", ContentType: "Quote"}, "Content is required"},
		{"Content Too Long", samplePayload{Content: strings.Repeat("x", 11), Mood: "Joyful", ContentType: "Quote"}, "Content is required"},
		{"Unknown Mood", samplePayload{Content: "hi", Mood: "Sleepy", ContentType: "Quote"}, "Mood is required"},
		{"Unknown Content Type", samplePayload{Content: "hi", Mood: "Joyful", ContentType: "Essay"}, "Invalid content type"},
		{"Missing Content Type", samplePayload{Content: "hi", Mood: "Joyful"}, "contentType is required"},
		{"Bad Privacy", samplePayload{Content: "hi", Mood: "Joyful", ContentType: "Quote", Privacy: "friends"}, "Invalid privacy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Struct(&tt.payload)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, 400, models.StatusCode(err))
			assert.Equal(t, tt.wantMsg, models.PublicMessage(err))
		})
	}
}

type postPayload struct {
	Mood        string `json:"mood" validate:"notblank,mood" msg:"notblank=Mood is required;mood=Invalid mood"`
	ContentType string `json:"contentType" validate:"notblank,contenttype" msg:"notblank=Content type is required;contenttype=Invalid content type"`
}

type turn struct {
	Role string `json:"role" validate:"required,role" msg:"required=Role is required;role=Invalid history role"`
}

type chatPayload struct {
	History []turn `json:"history" validate:"omitempty,dive"`
}

func TestStruct_PerRuleMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		payload postPayload
		wantMsg string
	}{
		{"Valid", postPayload{Mood: "Lonely", ContentType: "poem"}, ""},
		{"Blank Mood", postPayload{Mood: " ", ContentType: "Poem"}, "Mood is required"},
		{"Unknown Mood", postPayload{Mood: "Sleepy", ContentType: "Poem"}, "Invalid mood"},
		{"Blank Content Type", postPayload{Mood: "Lonely"}, "Content type is required"},
		{"Unknown Content Type", postPayload{Mood: "Lonely", ContentType: "Essay"}, "Invalid content type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Struct(&tt.payload)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantMsg, models.PublicMessage(err))
		})
	}
}

func TestStruct_NestedSliceMessages(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Struct(&chatPayload{}))
	assert.NoError(t, Struct(&chatPayload{History: []turn{{Role: "user"}, {Role: "assistant"}, {Role: "Model"}}}))

	err := Struct(&chatPayload{History: []turn{{Role: "user"}, {Role: "narrator"}}})
	require.Error(t, err)
	assert.Equal(t, "Invalid history role", models.PublicMessage(err))

	err = Struct(&chatPayload{History: []turn{{}}})
	assert.Equal(t, "Role is required", models.PublicMessage(err))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "secret1", false},
		{"Exactly Min Length", "abcdef", false},
		{"Too Short", "abcde", true},
		{"Empty", "", true},
		{"Too Long", strings.Repeat("a", 73), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "test@example.com", false},
		{"Invalid Format", "not-an-email", true},
		{"Missing Domain", "user@", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
