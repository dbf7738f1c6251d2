package companion

import (
	_ "embed"
	"fmt"
	"strings"

	"moodrealm/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var promptsYAML []byte

// Catalog holds the persona priming pair, the greeting shown before a
// conversation exists and the one-shot prompt templates.
type Catalog struct {
	Persona   []Turn `yaml:"persona"`
	Greeting  string `yaml:"greeting"`
	Templates struct {
		Quote   string `yaml:"quote"`
		Content string `yaml:"content"`
	} `yaml:"templates"`
}

// LoadCatalog parses the embedded prompt catalog.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(promptsYAML)
}

// ParseCatalog parses a prompt catalog and checks that the persona is a user/model pair.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse prompt catalog: %w", err)
	}
	if len(c.Persona) != models.PrimingMessageCount {
		return nil, fmt.Errorf("prompt catalog: persona must have %d turns, got %d", models.PrimingMessageCount, len(c.Persona))
	}
	if c.Persona[0].Role != models.RoleUser || c.Persona[1].Role != models.RoleModel {
		return nil, fmt.Errorf("prompt catalog: persona must be a user turn followed by a model turn")
	}
	if c.Greeting == "" || c.Templates.Quote == "" || c.Templates.Content == "" {
		return nil, fmt.Errorf("prompt catalog: greeting and templates are required")
	}
	return &c, nil
}

// QuotePrompt renders the quote template.
func (c *Catalog) QuotePrompt(mood, category string) string {
	return strings.NewReplacer("{mood}", mood, "{category}", category).Replace(c.Templates.Quote)
}

// ContentPrompt renders the content template.
func (c *Catalog) ContentPrompt(mood models.Mood, contentType models.ContentType) string {
	return strings.NewReplacer("{mood}", string(mood), "{contentType}", string(contentType)).Replace(c.Templates.Content)
}

// PrimingMessages returns the persona as persistable conversation messages.
func (c *Catalog) PrimingMessages() []models.ConversationMessage {
	msgs := make([]models.ConversationMessage, len(c.Persona))
	for i, t := range c.Persona {
		msgs[i] = models.ConversationMessage{Role: t.Role, Content: t.Text}
	}
	return msgs
}
