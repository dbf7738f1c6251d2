package companion

import (
	"context"
	"testing"

	"moodrealm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	priming := c.PrimingMessages()
	require.Len(t, priming, 2)
	assert.Equal(t, models.RoleUser, priming[0].Role)
	assert.Equal(t, models.RoleModel, priming[1].Role)
	assert.Contains(t, priming[0].Content, "SoulBot")
	assert.Equal(t, "Hello! I'm your AI companion. How can I support you today?", c.Greeting)
}

func TestCatalog_Prompts(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	assert.Equal(t,
		"Generate a single lined unique, short, and creative motivational quote for someone feeling Anxious.",
		c.QuotePrompt("Anxious", "motivational"))

	prompt := c.ContentPrompt(models.MoodJoyful, models.ContentPoem)
	assert.Contains(t, prompt, "Poem")
	assert.Contains(t, prompt, "Joyful")
	assert.NotContains(t, prompt, "{")
}

func TestParseCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Malformed", "persona: ["},
		{"Single Turn", "persona:\n  - role: user\n    content: hi\ngreeting: g\ntemplates:\n  quote: q\n  content: c\n"},
		{"Wrong Order", "persona:\n  - role: model\n    content: a\n  - role: user\n    content: b\ngreeting: g\ntemplates:\n  quote: q\n  content: c\n"},
		{"Missing Greeting", "persona:\n  - role: user\n    content: a\n  - role: model\n    content: b\ntemplates:\n  quote: q\n  content: c\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestNewGeminiClient_WithoutKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "", "")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), []Turn{{Role: models.RoleUser, Text: "hi"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
