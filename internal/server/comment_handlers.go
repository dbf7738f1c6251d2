package server

import (
	"moodrealm/internal/models"
	"moodrealm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	Text string `json:"text" validate:"notblank" msg:"Comment text is required"`
}

// CommentPost handles POST /api/posts/:id/comment
// @Summary Add comment
// @Description Returns the post's full comment list.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body commentRequest true "Comment"
// @Success 200 {array} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/comment [post]
func (s *Server) CommentPost(c *fiber.Ctx) error {
	return s.createComment(c, models.TargetPost, "post")
}

// CommentStory handles POST /api/stories/:id/comment
// @Summary Add comment
// @Tags stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Story ID"
// @Param request body commentRequest true "Comment"
// @Success 200 {array} models.Comment
// @Failure 403 {object} models.ErrorResponse
// @Router /stories/{id}/comment [post]
func (s *Server) CommentStory(c *fiber.Ctx) error {
	return s.createComment(c, models.TargetStory, "story")
}

// GetPostComments handles GET /api/posts/:id/comments
// @Summary Post comments, oldest first
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/comments [get]
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	return s.listComments(c, models.TargetPost, "post")
}

// GetStoryComments handles GET /api/stories/:id/comments
// @Summary Story comments, oldest first
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Story ID"
// @Success 200 {array} models.Comment
// @Failure 403 {object} models.ErrorResponse
// @Router /stories/{id}/comments [get]
func (s *Server) GetStoryComments(c *fiber.Ctx) error {
	return s.listComments(c, models.TargetStory, "story")
}

func (s *Server) createComment(c *fiber.Ctx, targetType, resource string) error {
	var req commentRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	targetID, err := s.parseID(c, resource)
	if err != nil {
		return nil
	}

	comments, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:     currentUserID(c),
		TargetType: targetType,
		TargetID:   targetID,
		Text:       req.Text,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

func (s *Server) listComments(c *fiber.Ctx, targetType, resource string) error {
	targetID, err := s.parseID(c, resource)
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.UserContext(), targetType, targetID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}
