// Package server contains the HTTP handlers for the application's routes.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"blogly/internal/cache"
	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/middleware"
	"blogly/internal/models"
	"blogly/internal/repository"
	"blogly/internal/view"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	tagRepo        repository.TagRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("blogly"),
		userRepo:       repository.NewUserRepository(db),
		postRepo:       repository.NewPostRepository(db),
		tagRepo:        repository.NewTagRepository(db),
	}

	return server, nil
}

// NewApp creates the Fiber application with the embedded view engine and
// the application-wide error handler.
func (s *Server) NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:     "Blogly",
		Views:       view.Engine(),
		ViewsLayout: "layouts/main",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, models.StatusFor(err), err)
		},
	})
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// OpenTelemetry span per request (after requestid so spans carry it)
	app.Use(middleware.TracingMiddleware())

	// Context middleware to propagate the request ID to the logger
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Blogly Metrics Dashboard",
	}))

	// Static assets (default profile image, stylesheet)
	app.Static("/static", "./web/static")

	// Homepage
	app.Get("/", s.Home)

	// User routes
	users := app.Group("/users")
	users.Get("/", s.ListUsers)
	users.Get("/new", s.NewUserForm)
	users.Post("/new", s.CreateUser)
	users.Get("/:id", s.ShowUser)
	users.Get("/:id/edit", s.EditUserForm)
	users.Post("/:id/edit", s.UpdateUser)
	users.Post("/:id/delete", s.DeleteUser)
	users.Get("/:id/posts/new", s.NewPostForm)
	users.Post("/:id/posts/new", s.CreatePost)

	// Post routes
	posts := app.Group("/posts")
	posts.Get("/:id", s.ShowPost)
	posts.Get("/:id/edit", s.EditPostForm)
	posts.Post("/:id/edit", s.UpdatePost)
	posts.Post("/:id/delete", s.DeletePost)

	// Tag routes
	tags := app.Group("/tags")
	tags.Get("/", s.ListTags)
	tags.Get("/new", s.NewTagForm)
	tags.Post("/new", s.CreateTag)
	tags.Get("/:id", s.ShowTag)
	tags.Get("/:id/edit", s.EditTagForm)
	tags.Post("/:id/edit", s.UpdateTag)
	tags.Post("/:id/delete", s.DeleteTag)
}

// Home handles GET / by redirecting to the user listing.
func (s *Server) Home(c *fiber.Ctx) error {
	return c.Redirect("/users", fiber.StatusFound)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The app degrades gracefully without a cache.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
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

// Start starts the server
func (s *Server) Start() error {
	app := s.NewApp()
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
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
