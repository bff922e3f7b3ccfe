package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"knowledgebase/config"
	"knowledgebase/handlers"
	"knowledgebase/helper"
	"knowledgebase/middleware"
	"knowledgebase/repositories"
	"knowledgebase/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	config.InitConfig(".")
	config.InitJWT()
	config.InitRedis()
	config.InitGenAI()

	// Initialize database
	db := config.InitDB()

	// Media directories for uploaded PDFs and avatars
	for _, dir := range []string{"articles", "avatars"} {
		if err := os.MkdirAll(filepath.Join(config.GlobalConfig.Media.Root, dir), 0o755); err != nil {
			log.Fatalf("Failed to create media directory: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	solutionRepo := repositories.NewSolutionRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)
	noteRepo := repositories.NewNoteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, categoryRepo, solutionRepo, commentRepo, analyticsRepo, userRepo)
	moderationService := services.NewModerationService(articleRepo, solutionRepo, userRepo, config.GlobalConfig.Moderation.RequireAdmin)
	assistService := services.NewAssistService(config.GenAIClient, config.GenAIModel)
	searchService := services.NewSearchService(articleRepo, analyticsRepo, assistService)
	dashboardService := services.NewDashboardService(articleRepo, categoryRepo, userRepo, analyticsRepo)
	profileService := services.NewProfileService(userRepo, noteRepo)
	categoryService := services.NewCategoryService(categoryRepo, userRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	blacklist := middleware.NewTokenBlacklist(config.RedisClient)
	authHandler := handlers.NewAuthHandler(authService, blacklist, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService)
	searchHandler := handlers.NewSearchHandler(searchService)
	homeHandler := handlers.NewHomeHandler(articleService, profileService)
	moderationHandler := handlers.NewModerationHandler(moderationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	profileHandler := handlers.NewProfileHandler(profileService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static("/media", config.GlobalConfig.Media.Root)

	// Public routes; identity is picked up when a token is present
	public := router.Group("/")
	public.Use(middleware.OptionalAuth(blacklist))
	{
		public.GET("", homeHandler.Home)
		public.GET("search", searchHandler.Search)
		public.GET("articles/:id", articleHandler.GetArticle)
		public.GET("categories", categoryHandler.GetCategories)
	}

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", middleware.LoginRateLimiter(config.RedisClient, 10, time.Minute), authHandler.Login)
		auth.POST("/logout", middleware.AuthMiddleware(blacklist), authHandler.Logout)
	}

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(blacklist))
	{
		// Profile
		protected.GET("profile", profileHandler.GetProfile)
		protected.PUT("profile", profileHandler.UpdateInfo)
		protected.POST("profile/avatar", profileHandler.UploadAvatar)
		protected.POST("profile/notes", profileHandler.SendNote)

		// Community actions on published articles
		protected.POST("articles/:id/solutions", articleHandler.CreateSolution)
		protected.POST("articles/:id/comments", articleHandler.CreateComment)
		protected.POST("articles/:id/feedback", articleHandler.CreateFeedback)

		// Redactor workspace
		redactor := protected.Group("redactor")
		{
			redactor.GET("/dashboard", dashboardHandler.Redactor)
			redactor.GET("/articles", articleHandler.MyArticles)
			redactor.POST("/articles", articleHandler.CreateArticle)
			redactor.PUT("/articles/:id", articleHandler.UpdateArticle)
		}

		// Moderation; the role gate lives in the service and is configurable
		moderation := protected.Group("moderation")
		{
			moderation.GET("/queue", moderationHandler.Queue)
			moderation.POST("/articles/:id", moderationHandler.Decide)
		}

		// Admin
		protected.GET("dashboard", dashboardHandler.Admin)
		protected.POST("categories", categoryHandler.CreateCategory)
	}

	// Start server
	port := config.GlobalConfig.Server.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
