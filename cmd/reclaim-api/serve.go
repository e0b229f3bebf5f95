package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/reclaim-app/backend/internal/config"
	"github.com/reclaim-app/backend/internal/handlers"
	"github.com/reclaim-app/backend/internal/logger"
	"github.com/reclaim-app/backend/internal/middleware"
	"github.com/reclaim-app/backend/internal/repository"
	"github.com/reclaim-app/backend/internal/service"
	"github.com/reclaim-app/backend/pkg/supabase"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting Reclaim API server",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	urgeRepo := repository.NewUrgeRepository(supabaseClient)
	journalRepo := repository.NewJournalRepository(supabaseClient)
	streakRepo := repository.NewStreakRepository(supabaseClient)
	profileRepo := repository.NewProfileRepository(supabaseClient)

	// Initialize services
	urgeService := service.NewUrgeService(urgeRepo)
	journalService := service.NewJournalService(journalRepo)
	streakService := service.NewStreakService(streakRepo)
	analyticsService := service.NewAnalyticsService(urgeRepo, journalRepo)
	insightService := service.NewInsightService(urgeRepo)
	achievementService := service.NewAchievementService(urgeRepo, streakRepo)
	dashboardService := service.NewDashboardService(urgeRepo, journalRepo, streakRepo)
	authService := service.NewAuthService(supabaseClient, profileRepo)

	// Initialize handlers
	urgeHandler := handlers.NewUrgeHandler(urgeService)
	journalHandler := handlers.NewJournalHandler(journalService)
	streakHandler := handlers.NewStreakHandler(streakService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	insightsHandler := handlers.NewInsightsHandler(insightService)
	achievementsHandler := handlers.NewAchievementsHandler(achievementService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	authHandler := handlers.NewAuthHandler(authService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.GET("/me", middleware.Auth(supabaseClient), authHandler.Me)
			auth.PATCH("/me", middleware.Auth(supabaseClient), authHandler.UpdateMe)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Urge routes
			protected.POST("/urges", urgeHandler.CreateUrge)
			protected.GET("/urges", urgeHandler.GetUrges)
			protected.GET("/urges/today", urgeHandler.GetTodayUrges)
			protected.GET("/urges/:id", urgeHandler.GetUrge)
			protected.POST("/urges/:id/resolve", urgeHandler.ResolveUrge)

			// Journal routes
			protected.GET("/journal", journalHandler.GetEntries)
			protected.GET("/journal/:date", journalHandler.GetEntry)
			protected.PUT("/journal/:date", journalHandler.UpsertEntry)

			// Streak routes
			protected.GET("/streak", streakHandler.GetStreak)
			protected.POST("/streak/checkin", streakHandler.CheckIn)
			protected.POST("/streak/relapse", streakHandler.Relapse)

			// Analytics routes
			protected.GET("/analytics/urges", analyticsHandler.GetUrgeAnalytics)
			protected.GET("/analytics/mood", analyticsHandler.GetMoodAnalytics)
			protected.GET("/analytics/mood-week", analyticsHandler.GetMoodWeek)
			protected.GET("/analytics/summary", analyticsHandler.GetSummary)

			// Insight and achievement routes
			protected.GET("/insights", insightsHandler.GetInsights)
			protected.GET("/achievements", achievementsHandler.GetAchievements)
			protected.GET("/achievements/milestone", achievementsHandler.GetMilestone)

			// Dashboard route
			protected.GET("/dashboard", dashboardHandler.GetDashboard)
		}
	}

	// Start server
	addr := ":" + cfg.Server.Port
	log.Info("listening", logger.String("addr", addr))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
