package main

import (
	"context"
	"dietai/database"
	"dietai/docs"
	"dietai/internal/cache"
	"dietai/internal/config"
	"dietai/internal/controllers"
	"dietai/internal/logger"
	"dietai/internal/middleware"
	"dietai/internal/openai"
	"dietai/internal/repository"
	"dietai/internal/services"
	"dietai/internal/usda"
	"dietai/routes"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	log := logger.Init()
	defer logger.Sync()

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "DietAI API"
	docs.SwaggerInfo.Description = "Onboarding, food log, food search and nutrition chat for the DietAI app."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	db, err := database.ConnectDatabase(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.MigrateDatabase(db, log); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	var redisClient *cache.RedisClient
	if cfg.Redis.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis.URL)
		cancel()
		if err != nil {
			log.Warn("Redis unavailable, food search runs without cache", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info("Connected to Redis")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)
	goalRepo := repository.NewNutritionGoalRepository(db)
	sessionRepo := repository.NewOnboardingSessionRepository(db)
	foodLogRepo := repository.NewFoodLogRepository(db)
	chatRepo := repository.NewChatMessageRepository(db)

	// External clients
	usdaClient := usda.NewClient(cfg.USDA.APIKey, cfg.USDA.BaseURL, log.Named("usda"))

	var chatClient services.ChatCompleter
	openaiClient, err := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	if err != nil {
		log.Warn("Chat assistant disabled", zap.Error(err))
	} else {
		chatClient = openaiClient
	}

	// Services
	var foodCache services.FoodCache
	if redisClient != nil {
		foodCache = redisClient
	}
	onboardingService := services.NewOnboardingService(sessionRepo, profileRepo, goalRepo, cfg.Location, log.Named("onboarding"))
	foodLogService := services.NewFoodLogService(foodLogRepo, goalRepo, cfg.Location, log.Named("food_log"))
	foodSearchService := services.NewFoodSearchService(usdaClient, foodCache, cfg.Redis.FoodCacheTTL, log.Named("food_search"))
	chatService := services.NewChatService(chatClient, chatRepo, log.Named("chat"))

	cleanupJob := services.NewSessionCleanupJob(sessionRepo, cfg.CleanupCron, cfg.SessionTTL, cfg.Location, log.Named("cleanup"))
	if err := cleanupJob.Start(); err != nil {
		log.Fatal("Failed to start onboarding cleanup job", zap.Error(err))
	}
	defer cleanupJob.Stop()

	// Initialize controllers
	userController := controllers.NewUserController(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	profileController := controllers.NewUserProfileController(profileRepo, log)
	onboardingController := controllers.NewOnboardingController(onboardingService)
	goalController := controllers.NewGoalController(goalRepo, log)
	foodController := controllers.NewFoodController(foodSearchService)
	foodLogController := controllers.NewFoodLogController(foodLogService)
	chatController := controllers.NewChatController(chatService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(log.Named("http")), gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":  "DietAI API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": cfg.DB.Driver,
			"cache":    redisClient != nil,
			"chat":     chatClient != nil,
		})
	})

	routes.RegisterUserRoutes(router, userController, cfg.Auth.JWTSecret)
	routes.RegisterUserProfileRoutes(router, profileController, cfg.Auth.JWTSecret)
	routes.RegisterOnboardingRoutes(router, onboardingController, cfg.Auth.JWTSecret)
	routes.RegisterGoalRoutes(router, goalController, cfg.Auth.JWTSecret)
	routes.RegisterFoodRoutes(router, foodController, cfg.Auth.JWTSecret)
	routes.RegisterFoodLogRoutes(router, foodLogController, cfg.Auth.JWTSecret)
	routes.RegisterChatRoutes(router, chatController, cfg.Auth.JWTSecret)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		status := http.StatusOK
		response := gin.H{
			"database_health": true,
			"driver":          cfg.DB.Driver,
		}
		if err := database.Ping(db); err != nil {
			status = http.StatusServiceUnavailable
			response["database_health"] = false
			response["error"] = err.Error()
		}

		if redisClient != nil {
			redisStatus, err := redisClient.GetStatus(c.Request.Context())
			if err != nil {
				response["redis"] = gin.H{"connected": false, "error": err.Error()}
			} else {
				response["redis"] = redisStatus
			}
		} else {
			response["redis"] = gin.H{"connected": false}
		}

		c.JSON(status, response)
	})

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   45 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("docs", "http://localhost:"+cfg.Port+"/swagger/index.html"),
			zap.String("timezone", cfg.Location.String()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
}
