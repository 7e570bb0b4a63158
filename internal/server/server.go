package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/bloghub/bloghub/internal/config"
	"github.com/bloghub/bloghub/internal/guard"
	"github.com/bloghub/bloghub/internal/handler"
	"github.com/bloghub/bloghub/internal/middleware"
	"github.com/bloghub/bloghub/internal/repository"
	"github.com/bloghub/bloghub/internal/service"
	"github.com/bloghub/bloghub/internal/storage"
	"github.com/bloghub/bloghub/internal/throttle"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	redis    *storage.RedisClient
	postgres *storage.Postgres

	authHandler      *handler.AuthHandler
	blogHandler      *handler.BlogHandler
	publicHandler    *handler.PublicBlogHandler
	categoryHandler  *handler.CategoryHandler
	socialHandler    *handler.SocialHandler
	analyticsHandler *handler.AnalyticsHandler

	authService *service.AuthService
	throttle    *throttle.Throttle

	httpServer *http.Server
}

func New(cfg *config.Config, redis *storage.RedisClient, postgres *storage.Postgres) *Server {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Repositories
	userRepo := repository.NewUserRepository(postgres)
	blogRepo := repository.NewBlogRepository(postgres)
	categoryRepo := repository.NewCategoryRepository(postgres)
	tagRepo := repository.NewTagRepository(postgres)
	socialRepo := repository.NewSocialRepository(postgres)
	requestLogRepo := repository.NewRequestLogRepository(postgres)

	// Services
	authService := service.NewAuthService(userRepo, redis,
		cfg.JWT.Secret, cfg.JWT.AccessExpiryMins, cfg.JWT.RefreshExpiryHours)
	blogService := service.NewBlogService(userRepo, blogRepo, categoryRepo, tagRepo, socialRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	socialService := service.NewSocialService(socialRepo, blogRepo, userRepo)
	analyticsService := service.NewAnalyticsService(requestLogRepo)

	// Rolling-window throttle over the redis counter store
	policies := throttle.NewPolicies(
		time.Duration(cfg.Throttle.WindowDays)*24*time.Hour,
		*cfg.Throttle.UnregisteredLimit,
		*cfg.Throttle.FreeLimit,
	)
	accessThrottle := throttle.New(throttle.NewRedisStore(redis), policies)

	middleware.InitAccessLog(requestLogRepo, 1000)

	s := &Server{
		router:           router,
		config:           cfg,
		redis:            redis,
		postgres:         postgres,
		authHandler:      handler.NewAuthHandler(authService),
		blogHandler:      handler.NewBlogHandler(blogService),
		publicHandler:    handler.NewPublicBlogHandler(blogService),
		categoryHandler:  handler.NewCategoryHandler(categoryService),
		socialHandler:    handler.NewSocialHandler(socialService),
		analyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		authService:      authService,
		throttle:         accessThrottle,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Logger())
	s.router.Use(middleware.AccessLog())
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)

	auth := s.router.Group("/auth")
	{
		auth.POST("/login/", s.authHandler.Login)
		auth.POST("/refresh/", s.authHandler.Refresh)
		auth.POST("/logout/", middleware.RequireAuth(s.authService), s.authHandler.Logout)
		auth.GET("/userinfo/", middleware.RequireAuth(s.authService), s.authHandler.UserInfo)
	}

	s.router.POST("/api/auth/signup/", s.authHandler.Signup)

	blogs := s.router.Group("/api/blogs", middleware.RequireAuth(s.authService))
	{
		blogs.GET("/category/", s.categoryHandler.List)
		blogs.POST("/category/", middleware.RequireRole(guard.IsAdmin), s.categoryHandler.Create)
		blogs.DELETE("/category/", middleware.RequireRole(guard.IsAdmin), s.categoryHandler.Delete)

		blogs.GET("/", middleware.RequireRole(guard.IsAuthor), s.blogHandler.ListOwn)
		blogs.POST("/create/", middleware.RequireRole(guard.IsAuthor), s.blogHandler.Create)
		blogs.DELETE("/delete/", middleware.RequireRole(guard.IsAuthor), s.blogHandler.Delete)
		blogs.PATCH("/change_status/", middleware.RequireRole(guard.IsAuthor), s.blogHandler.ChangeStatus)

		blogs.POST("/like/", s.socialHandler.LikeBlog)
		blogs.POST("/follow/", s.socialHandler.FollowAuthor)
	}

	public := s.router.Group("/api/blog",
		middleware.OptionalAuth(s.authService),
		middleware.Throttle(s.throttle),
	)
	{
		public.GET("/", s.publicHandler.List)
		public.GET("/:slug/", s.publicHandler.GetBySlug)
	}

	admin := s.router.Group("/admin",
		middleware.RequireAuth(s.authService),
		middleware.RequireRole(guard.IsAdmin),
	)
	{
		admin.GET("/analytics/summary", s.analyticsHandler.Summary)
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	redisHealthy := true
	if err := s.redis.Ping(c.Request.Context()); err != nil {
		redisHealthy = false
		log.Printf("Redis health check failed: %v", err)
	}

	dbHealthy := true
	if err := s.postgres.Ping(c.Request.Context()); err != nil {
		dbHealthy = false
		log.Printf("Database health check failed: %v", err)
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !redisHealthy || !dbHealthy {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"status":    status,
		"service":   "bloghub",
		"timestamp": time.Now().Unix(),
		"checks": gin.H{
			"redis":    redisHealthy,
			"database": dbHealthy,
		},
	})
}

func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	log.Printf("Starting bloghub on %s", addr)
	log.Printf("Environment: %s", s.config.Server.Environment)

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}
