// Package companion talks to the generative model behind the AI companion.
package companion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moodrealm/internal/models"

	"google.golang.org/genai"
)

// ErrNotConfigured is returned when no API key was supplied.
var ErrNotConfigured = errors.New("generative model is not configured")

// ErrEmptyResponse is returned when the model answers without text.
var ErrEmptyResponse = errors.New("generative model returned no text")

// Turn is one message sent to the model.
type Turn struct {
	Role models.Role `yaml:"role"`
	Text string      `yaml:"content"`
}

// Client generates the model's next message for an ordered list of turns.
type Client interface {
	Generate(ctx context.Context, turns []Turn) (string, error)
}

// GeminiClient implements Client on the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed client. An empty apiKey yields a
// client that fails every call with ErrNotConfigured.
func NewGeminiClient(ctx context.Context, apiKey, model string) (Client, error) {
	if apiKey == "" {
		return unconfigured{}, nil
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, turns []Turn) (string, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := genai.RoleUser
		if t.Role == models.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, genai.Role(role)))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

type unconfigured struct{}

func (unconfigured) Generate(context.Context, []Turn) (string, error) {
	return "", ErrNotConfigured
}
