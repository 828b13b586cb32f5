// Package server contains HTTP and WebSocket handlers for the marketplace API.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "creatorhub/docs" // swagger docs
	"creatorhub/internal/cache"
	"creatorhub/internal/config"
	"creatorhub/internal/database"
	"creatorhub/internal/middleware"
	"creatorhub/internal/models"
	"creatorhub/internal/notifications"
	"creatorhub/internal/repository"
	"creatorhub/internal/service"
	"creatorhub/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
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
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc

	userRepo       repository.UserRepository
	campaignRepo   repository.CampaignRepository
	invitationRepo repository.InvitationRepository
	submissionRepo repository.SubmissionRepository
	proofRepo      repository.ProofRepository

	notifier *notifications.Notifier
	hub      *notifications.Hub
	media    *storage.Client

	campaignService   *service.CampaignService
	invitationService *service.InvitationService
	submissionService *service.SubmissionService
	proofService      *service.ProofService
	userService       *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	srv, err := NewServerWithDeps(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	srv.promMiddleware = middleware.InitMetrics("creatorhub-api")

	// Object storage is optional in development; media uploads return 503
	// until a bucket is reachable.
	media, err := storage.NewClient(cfg)
	if err != nil {
		log.Printf("object storage unavailable, media uploads disabled: %v", err)
	} else {
		srv.media = media
	}

	return srv, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		userRepo:       repository.NewUserRepository(db),
		campaignRepo:   repository.NewCampaignRepository(db),
		invitationRepo: repository.NewInvitationRepository(db),
		submissionRepo: repository.NewSubmissionRepository(db),
		proofRepo:      repository.NewProofRepository(db),
	}

	if redisClient != nil {
		server.notifier = notifications.NewNotifier(redisClient)
		server.hub = notifications.NewHub()
	}

	server.campaignService = service.NewCampaignService(server.campaignRepo, server.notifier)
	server.invitationService = service.NewInvitationService(
		server.invitationRepo, server.campaignRepo, server.userRepo, server.notifier)
	server.submissionService = service.NewSubmissionService(
		server.submissionRepo, server.campaignRepo, server.invitationRepo, server.notifier)
	server.proofService = service.NewProofService(
		server.proofRepo, server.submissionRepo, server.campaignRepo, server.notifier)
	server.userService = service.NewUserService(server.userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Distributed tracing spans per request
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "CreatorHub Backend Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Public campaign browse: only admin-approved campaigns are listed.
	publicCampaigns := api.Group("/campaigns")
	publicCampaigns.Get("/", s.GetActiveCampaigns)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// User routes
	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Get("/:id", s.GetUserProfile)

	// Campaign routes. Specific paths before generic /:id.
	campaigns := protected.Group("/campaigns")
	campaigns.Post("/", middleware.RequireRoles(models.RoleBrand), s.CreateCampaign)
	campaigns.Get("/mine", middleware.RequireRoles(models.RoleBrand), s.GetMyCampaigns)
	campaigns.Post("/:id/complete", middleware.RequireRoles(models.RoleBrand), s.CompleteCampaign)

	// Invitations scoped to a campaign (brand side)
	campaigns.Post("/:id/invitations", middleware.RequireRoles(models.RoleBrand), s.InviteCreator)
	campaigns.Get("/:id/invitations", middleware.RequireRoles(models.RoleBrand), s.GetCampaignInvitations)

	// Submissions scoped to a campaign
	campaigns.Post("/:id/submissions", middleware.RequireRoles(models.RoleCreator), middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "submit_content"), s.SubmitContent)
	campaigns.Get("/:id/submissions", middleware.RequireRoles(models.RoleBrand, models.RoleAdmin), s.GetCampaignSubmissions)

	campaigns.Get("/:id", s.GetCampaign)

	// Invitation routes (creator side)
	invitations := protected.Group("/invitations", middleware.RequireRoles(models.RoleCreator))
	invitations.Get("/", s.GetMyInvitations)
	invitations.Post("/:id/accept", s.AcceptInvitation)
	invitations.Post("/:id/decline", s.DeclineInvitation)

	// Submission routes
	submissions := protected.Group("/submissions")
	submissions.Get("/mine", middleware.RequireRoles(models.RoleCreator), s.GetMySubmissions)
	submissions.Post("/:id/review", middleware.RequireRoles(models.RoleBrand, models.RoleAdmin), s.ReviewSubmission)
	submissions.Post("/:id/resubmit", middleware.RequireRoles(models.RoleCreator), s.ResubmitContent)
	submissions.Post("/:id/proof", middleware.RequireRoles(models.RoleCreator), s.SubmitProof)
	submissions.Get("/:id/proof", s.GetProof)
	submissions.Get("/:id", s.GetSubmission)

	// Proof verification; campaign owners and admins flip the payment state.
	proofs := protected.Group("/proofs", middleware.RequireRoles(models.RoleBrand, models.RoleAdmin))
	proofs.Post("/:id/verify", s.VerifyProof)

	// Media upload for submission assets
	protected.Post("/media", middleware.RequireRoles(models.RoleCreator, models.RoleBrand), s.UploadMedia)

	// Websocket endpoint; browsers cannot set WS headers so the token
	// travels as a query parameter.
	api.Get("/ws", middleware.WebSocketAuthRequired, s.WebsocketHandler())

	// Admin routes
	admin := protected.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	admin.Get("/campaigns/pending", s.GetPendingCampaigns)
	admin.Post("/campaigns/:id/moderate", s.ModerateCampaign)
	admin.Get("/proofs", s.GetProofQueue)
	admin.Get("/users", s.GetAllUsers)
	admin.Post("/users/:id/role", s.SetUserRole)
	admin.Post("/users/:id/status", s.SetUserStatus)
}

// HealthCheck is a legacy/simple alias for ReadinessCheck
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return s.ReadinessCheck(c)
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
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "CreatorHub",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	app := fiber.New(fiber.Config{
		AppName:   "CreatorHub API",
		BodyLimit: 25 * 1024 * 1024, // media uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	// Wire the notification hub to Redis pub/sub if available
	if s.notifier != nil && s.hub != nil {
		go func() {
			if err := s.hub.StartWiring(s.shutdownCtx, s.notifier); err != nil {
				log.Printf("failed to start hub wiring: %v", err)
			}
		}()
	}

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Cancel the server-scoped context to stop the wiring goroutine
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	// Close WebSocket connections gracefully
	if s.hub != nil {
		if err := s.hub.Shutdown(ctx); err != nil {
			log.Printf("error shutting down notification hub: %v", err)
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
