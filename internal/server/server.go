// Package server contains the HTTP handlers for the MoodRealm API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	_ "moodrealm/docs" // swagger docs
	"moodrealm/internal/cache"
	"moodrealm/internal/companion"
	"moodrealm/internal/config"
	"moodrealm/internal/database"
	"moodrealm/internal/media"
	"moodrealm/internal/middleware"
	"moodrealm/internal/models"
	"moodrealm/internal/repository"
	"moodrealm/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	promOnce       sync.Once
	promMiddleware *fiberprometheus.FiberPrometheus
)

// initMetrics builds the HTTP metrics middleware once per process; the
// collectors live in the default Prometheus registry.
func initMetrics() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMiddleware = fiberprometheus.New("moodrealm-api")
	})
	return promMiddleware
}

// Server holds all dependencies and provides handlers
type Server struct {
	config           *config.Config
	db               *gorm.DB
	redis            *redis.Client
	promMiddleware   *fiberprometheus.FiberPrometheus
	mediaStore       media.Store
	userService      *service.UserService
	postService      *service.PostService
	storyService     *service.StoryService
	commentService   *service.CommentService
	companionService *service.CompanionService
	mediaService     *service.MediaService
	closers          []func() error
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	redisClient := cache.NewClient(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// The Gemini client and the media store are built from cfg.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	ctx := context.Background()

	aiClient, err := companion.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	catalog, err := companion.LoadCatalog()
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: initMetrics(),
	}

	switch cfg.MediaBackend {
	case "gcs":
		store, err := media.NewGCSStore(ctx, cfg.MediaGCSBucket, cfg.MediaPublicBaseURL, "")
		if err != nil {
			return nil, err
		}
		s.mediaStore = store
		s.closers = append(s.closers, store.Close)
	default:
		store, err := media.NewLocalStore(cfg.MediaUploadDir, cfg.MediaPublicBaseURL)
		if err != nil {
			return nil, err
		}
		s.mediaStore = store
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	convRepo := repository.NewConversationRepository(db)

	s.userService = service.NewUserService(userRepo)
	s.postService = service.NewPostService(postRepo, reactionRepo)
	s.storyService = service.NewStoryService(storyRepo, reactionRepo)
	s.commentService = service.NewCommentService(commentRepo, map[string]service.CommentGuard{
		models.TargetPost:  s.postService.CanComment,
		models.TargetStory: s.storyService.CanComment,
	})
	s.companionService = service.NewCompanionService(convRepo, aiClient, catalog,
		time.Duration(cfg.AITimeoutSeconds)*time.Second)
	s.mediaService = service.NewMediaService(s.mediaStore, cfg.UploadMaxSizeMB)

	return s, nil
}

// NewApp returns a Fiber app whose error handler never leaks internal detail.
func (s *Server) NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:   "MoodRealm API",
		BodyLimit: int(s.mediaService.MaxUploadSizeBytes()) + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(models.ErrorResponse{Message: fe.Message})
			}
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err.Error())
			return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
		},
	})
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.StructuredLogger())

	app.Use(cors.New(cors.Config{
		AllowOrigins:  s.config.AllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "X-Has-More",
		MaxAge:        86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Root)
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	if local, ok := s.mediaStore.(*media.LocalStore); ok {
		app.Static("/media", local.Dir(), fiber.Static{MaxAge: 86400})
	}

	api := app.Group("/api")
	api.Get("/swagger/*", swagger.HandlerDefault)

	auth := s.AuthRequired()

	users := api.Group("/users")
	users.Post("/signup", middleware.RateLimit(s.redis, middleware.SignupLimit), s.Signup)
	users.Post("/login", middleware.RateLimit(s.redis, middleware.LoginLimit), s.Login)
	users.Get("/profile", auth, s.GetProfile)

	posts := api.Group("/posts")
	posts.Get("/", s.GetFeed)
	// Specific routes before the generic /:id route
	posts.Get("/user/:id", s.GetUserPosts)
	posts.Post("/", auth, middleware.RateLimit(s.redis, middleware.CreatePostLimit), s.CreatePost)
	posts.Post("/:id/like", auth, s.LikePost)
	posts.Post("/:id/report", auth, s.ReportPost)
	posts.Post("/:id/comment", auth, middleware.RateLimit(s.redis, middleware.CommentLimit), s.CommentPost)
	posts.Get("/:id/comments", s.GetPostComments)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", auth, s.DeletePost)

	stories := api.Group("/stories")
	stories.Get("/", s.GetStories)
	stories.Get("/my", auth, s.GetMyStories)
	stories.Post("/", auth, middleware.RateLimit(s.redis, middleware.CreateStoryLimit), s.CreateStory)
	stories.Post("/:id/like", auth, s.LikeStory)
	stories.Post("/:id/report", auth, s.ReportStory)
	stories.Post("/:id/comment", auth, middleware.RateLimit(s.redis, middleware.CommentLimit), s.CommentStory)
	stories.Get("/:id/comments", auth, s.GetStoryComments)
	stories.Get("/:id", auth, s.GetStory)
	stories.Delete("/:id", auth, s.DeleteStory)

	ai := api.Group("/ai")
	ai.Post("/generate", s.GenerateQuote)
	ai.Post("/generate-content", auth, s.GenerateContent)
	ai.Post("/chat", auth, middleware.RateLimit(s.redis, middleware.ChatLimit), s.Chat)
	ai.Get("/chat/history", auth, s.GetChatHistory)
	ai.Delete("/chat/history", auth, s.ClearChatHistory)

	upload := api.Group("/upload")
	upload.Post("/image", auth, s.UploadImage)
}

// Root handles GET /
func (s *Server) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Mood Realm API is running!"})
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Redis only backs rate
// limiting, which fails open, so a missing Redis is reported but not fatal.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis == nil {
		redisStatus = "unavailable"
	} else if err := cache.Ping(ctx, s.redis); err != nil {
		redisStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown releases the server's connections.
func (s *Server) Shutdown(ctx context.Context) error {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			log.Printf("error closing media store: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
