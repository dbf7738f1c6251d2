package server

import (
	"moodrealm/internal/models"

	"github.com/gofiber/fiber/v2"
)

type generateQuoteRequest struct {
	Mood     string `json:"mood" validate:"notblank" msg:"Mood is required"`
	Category string `json:"category" validate:"notblank" msg:"Category is required"`
}

type generateContentRequest struct {
	Mood        string `json:"mood" validate:"notblank,mood" msg:"notblank=Mood is required;mood=Invalid mood"`
	ContentType string `json:"contentType" validate:"notblank,contenttype" msg:"notblank=Content type is required;contenttype=Invalid content type"`
}

// chatTurn is one client-held history entry. Roles go through models.ParseRole,
// so "assistant" and "bot" are accepted as model turns.
type chatTurn struct {
	Role    string `json:"role" validate:"required,role" msg:"required=History role is required;role=Invalid history role"`
	Content string `json:"content"`
}

// chatRequest carries the new message. History is validated for client
// compatibility but the stored conversation is authoritative.
type chatRequest struct {
	NewMessage string     `json:"newMessage" validate:"notblank" msg:"New message is required"`
	History    []chatTurn `json:"history" validate:"omitempty,dive"`
}

// ChatMessage is one visible turn of the companion conversation.
type ChatMessage struct {
	Role    models.Role `json:"role"`
	Content string      `json:"content"`
	// Timestamp is RFC 3339.
	Timestamp string `json:"timestamp"`
}

// GenerateQuote handles POST /api/ai/generate
// @Summary Generate a quote
// @Tags ai
// @Accept json
// @Produce json
// @Param request body generateQuoteRequest true "Quote request"
// @Success 200 {object} object{quote=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /ai/generate [post]
func (s *Server) GenerateQuote(c *fiber.Ctx) error {
	var req generateQuoteRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	quote, err := s.companionService.GenerateQuote(c.UserContext(), req.Mood, req.Category)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"quote": quote})
}

// GenerateContent handles POST /api/ai/generate-content
// @Summary Generate content for a mood
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body generateContentRequest true "Content request"
// @Success 200 {object} object{content=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /ai/generate-content [post]
func (s *Server) GenerateContent(c *fiber.Ctx) error {
	var req generateContentRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	content, err := s.companionService.GenerateContent(c.UserContext(), req.Mood, req.ContentType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"content": content})
}

// Chat handles POST /api/ai/chat
// @Summary Talk to the AI companion
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body chatRequest true "Chat message"
// @Success 200 {object} object{reply=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /ai/chat [post]
func (s *Server) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	reply, err := s.companionService.SendMessage(c.UserContext(), currentUserID(c), req.NewMessage)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"reply": reply})
}

// GetChatHistory handles GET /api/ai/chat/history
// @Summary Visible companion history
// @Tags ai
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ChatMessage
// @Router /ai/chat/history [get]
func (s *Server) GetChatHistory(c *fiber.Ctx) error {
	msgs, err := s.companionService.GetHistory(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	out := make([]ChatMessage, len(msgs))
	for i, m := range msgs {
		out[i] = ChatMessage{
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		}
	}
	return c.JSON(out)
}

// ClearChatHistory handles DELETE /api/ai/chat/history
// @Summary Reset the companion conversation
// @Tags ai
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Router /ai/chat/history [delete]
func (s *Server) ClearChatHistory(c *fiber.Ctx) error {
	if err := s.companionService.ClearHistory(c.UserContext(), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Chat history cleared"})
}
