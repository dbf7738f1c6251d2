package server

import (
	"strconv"

	"moodrealm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createStoryRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content" validate:"notblank" msg:"Content is required"`
	Mood       string `json:"mood" validate:"omitempty,mood" msg:"Invalid mood"`
	Privacy    string `json:"privacy" validate:"omitempty,privacy" msg:"Privacy must be public or private"`
	CoverImage struct {
		URL      string `json:"url"`
		PublicID string `json:"public_id"`
	} `json:"coverImage"`
}

// GetStories handles GET /api/stories
// @Summary Public stories
// @Tags stories
// @Produce json
// @Param page query int false "1-based page"
// @Success 200 {array} models.Story
// @Header 200 {string} X-Has-More "true when another page may exist"
// @Router /stories [get]
func (s *Server) GetStories(c *fiber.Ctx) error {
	page, err := s.storyService.ListPublic(c.UserContext(), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}

	c.Set(hasMoreHeader, strconv.FormatBool(page.HasMore))
	return c.JSON(page.Stories)
}

// GetMyStories handles GET /api/stories/my
// @Summary Own stories, including private ones
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Story
// @Router /stories/my [get]
func (s *Server) GetMyStories(c *fiber.Ctx) error {
	stories, err := s.storyService.ListMine(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stories)
}

// GetStory handles GET /api/stories/:id
// @Summary Single story
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Story ID"
// @Success 200 {object} models.Story
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /stories/{id} [get]
func (s *Server) GetStory(c *fiber.Ctx) error {
	storyID, err := s.parseID(c, "story")
	if err != nil {
		return nil
	}

	story, err := s.storyService.GetStory(c.UserContext(), storyID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(story)
}

// CreateStory handles POST /api/stories
// @Summary Create story
// @Tags stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createStoryRequest true "Story"
// @Success 201 {object} models.Story
// @Failure 400 {object} models.ErrorResponse
// @Router /stories [post]
func (s *Server) CreateStory(c *fiber.Ctx) error {
	var req createStoryRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	story, err := s.storyService.CreateStory(c.UserContext(), service.CreateStoryInput{
		UserID:             currentUserID(c),
		Title:              req.Title,
		Content:            req.Content,
		Mood:               req.Mood,
		Privacy:            req.Privacy,
		CoverImageURL:      req.CoverImage.URL,
		CoverImagePublicID: req.CoverImage.PublicID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(story)
}

// DeleteStory handles DELETE /api/stories/:id
// @Summary Delete own story
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Story ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /stories/{id} [delete]
func (s *Server) DeleteStory(c *fiber.Ctx) error {
	storyID, err := s.parseID(c, "story")
	if err != nil {
		return nil
	}

	if err := s.storyService.DeleteStory(c.UserContext(), storyID, currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Story deleted"})
}

// LikeStory handles POST /api/stories/:id/like
// @Summary Toggle like
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Story ID"
// @Success 200 {object} LikesResponse
// @Router /stories/{id}/like [post]
func (s *Server) LikeStory(c *fiber.Ctx) error {
	storyID, err := s.parseID(c, "story")
	if err != nil {
		return nil
	}

	likes, err := s.storyService.ToggleLike(c.UserContext(), storyID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(LikesResponse{Likes: likes})
}

// ReportStory handles POST /api/stories/:id/report
// @Summary Toggle report
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Story ID"
// @Success 200 {object} ReportsResponse
// @Router /stories/{id}/report [post]
func (s *Server) ReportStory(c *fiber.Ctx) error {
	storyID, err := s.parseID(c, "story")
	if err != nil {
		return nil
	}

	res, err := s.storyService.ToggleReport(c.UserContext(), storyID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if res.Deleted {
		return c.JSON(MessageResponse{Message: "Story deleted due to reports"})
	}
	return c.JSON(ReportsResponse{Reports: res.Count})
}
