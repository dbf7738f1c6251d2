package server

import (
	"strconv"

	"moodrealm/internal/service"

	"github.com/gofiber/fiber/v2"
)

const hasMoreHeader = "X-Has-More"

type createPostRequest struct {
	Content         string `json:"content" validate:"notblank" msg:"Content is required"`
	Mood            string `json:"mood" validate:"notblank,mood" msg:"notblank=Mood is required;mood=Invalid mood"`
	ContentType     string `json:"contentType" validate:"notblank,contenttype" msg:"notblank=Content type is required;contenttype=Invalid content type"`
	BackgroundImage string `json:"backgroundImage"`
	BackgroundStyle string `json:"backgroundStyle"`
}

// MessageResponse carries an informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// LikesResponse is the reply to a like toggle.
type LikesResponse struct {
	Likes int64 `json:"likes"`
}

// ReportsResponse is the reply to a report toggle that did not remove the target.
type ReportsResponse struct {
	Reports int64 `json:"reports"`
}

// GetFeed handles GET /api/posts
// @Summary Post feed
// @Description Filter by mood and content type, sort by latest, likes, comments or random. Pages hold 10 posts.
// @Tags posts
// @Produce json
// @Param mood query string false "Mood, or 'all'"
// @Param contentType query string false "Content type"
// @Param sort query string false "latest | likes | comments | random"
// @Param page query int false "1-based page"
// @Success 200 {array} models.Post
// @Header 200 {string} X-Has-More "true when another page may exist"
// @Failure 400 {object} models.ErrorResponse
// @Router /posts [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page, err := s.postService.ListFeed(c.UserContext(), service.ListFeedInput{
		Mood:        c.Query("mood"),
		ContentType: c.Query("contentType"),
		Sort:        c.Query("sort"),
		Page:        c.QueryInt("page", 1),
	})
	if err != nil {
		return respondError(c, err)
	}

	c.Set(hasMoreHeader, strconv.FormatBool(page.HasMore))
	return c.JSON(page.Posts)
}

// GetUserPosts handles GET /api/posts/user/:id
// @Summary Posts by user
// @Tags posts
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "1-based page"
// @Success 200 {array} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /posts/user/{id} [get]
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "user")
	if err != nil {
		return nil
	}

	page, err := s.postService.ListUserPosts(c.UserContext(), userID, c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}

	c.Set(hasMoreHeader, strconv.FormatBool(page.HasMore))
	return c.JSON(page.Posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Single post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "post")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createPostRequest true "Post"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:          currentUserID(c),
		Content:         req.Content,
		Mood:            req.Mood,
		ContentType:     req.ContentType,
		BackgroundImage: req.BackgroundImage,
		BackgroundStyle: req.BackgroundStyle,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete own post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "post")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		UserID: currentUserID(c),
		PostID: postID,
	}); err != nil {
		return respondError(c, err)
	}

	return c.JSON(MessageResponse{Message: "Post deleted"})
}

// LikePost handles POST /api/posts/:id/like
// This endpoint toggles the like status - if already liked, it unlikes; if not liked, it likes
// @Summary Toggle like
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} LikesResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/like [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "post")
	if err != nil {
		return nil
	}

	likes, err := s.postService.ToggleLike(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(LikesResponse{Likes: likes})
}

// ReportPost handles POST /api/posts/:id/report
// @Summary Toggle report
// @Description The post is removed once 15 distinct users have reported it.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} ReportsResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id}/report [post]
func (s *Server) ReportPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "post")
	if err != nil {
		return nil
	}

	res, err := s.postService.ToggleReport(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if res.Deleted {
		return c.JSON(MessageResponse{Message: "Post deleted due to reports"})
	}
	return c.JSON(ReportsResponse{Reports: res.Count})
}
