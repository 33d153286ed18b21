package main

import (
	"context"
	"net/http"
	"time"

	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/config"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/database"
	adminctrl "github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/controller/admin"
	userctrl "github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/controller/user"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/dictionary"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/logger"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/model"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/repository"
	"github.com/Athit102220350/QLDA-22NH11-G9-ATD/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title English Learning API
// @version 1.0
// @description API for English learning: vocabulary topics with dictionary lookups, quizzes with graded attempts, per-category progress tracking, and a grammar chatbot.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Dictionary Components
		fx.Provide(
			dictionary.NewCache,
			func(cfg *config.Config) *dictionary.Client {
				return dictionary.NewClient(cfg.Dictionary.BaseURL, time.Duration(cfg.Dictionary.TimeoutSeconds)*time.Second)
			},
			dictionary.NewService,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewAttemptRepository,
			repository.NewProgressRepository,
			repository.NewSavedWordRepository,
			repository.NewCompletedLessonRepository,
			repository.NewActivityRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewQuizGrader,
			service.NewQuizService,
			service.NewAttemptService,
			service.NewProgressService,
			service.NewVocabularyService,
			service.NewAdminQuizService,
			service.NewGeminiLLMService,
			service.NewChatbotService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewQuizController,
			userctrl.NewVocabularyController,
			userctrl.NewProgressController,
			userctrl.NewChatbotController,
			adminctrl.NewAdminQuizController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *userctrl.QuizController,
	vocabCtrl *userctrl.VocabularyController,
	progressCtrl *userctrl.ProgressController,
	chatbotCtrl *userctrl.ChatbotController,
	adminQuizCtrl *adminctrl.AdminQuizController,
) {
	// Admin Routes
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/quizzes", adminQuizCtrl.CreateQuiz)
	}

	// User Routes
	userAPIGroup := router.Group("/api/v1")
	{
		// Vocabulary
		userAPIGroup.GET("/vocabulary/topics", vocabCtrl.GetTopics)
		userAPIGroup.GET("/vocabulary/topics/:letter", vocabCtrl.GetWordsForTopic)
		userAPIGroup.GET("/vocabulary/words/:word", vocabCtrl.LookupWord)
		userAPIGroup.GET("/vocabulary/favorites", vocabCtrl.GetFavorites)
		userAPIGroup.POST("/vocabulary/favorites", vocabCtrl.SaveFavorite)
		userAPIGroup.PUT("/vocabulary/favorites/:word/mastered", vocabCtrl.ToggleMastered)

		// Quizzes and attempts
		userAPIGroup.GET("/quizzes", quizCtrl.GetAllQuizzes)
		userAPIGroup.GET("/quizzes/:quiz_id", quizCtrl.GetQuizDetails)
		userAPIGroup.POST("/quizzes/:quiz_id/attempts", quizCtrl.StartAttempt)
		userAPIGroup.POST("/quizzes/:quiz_id/attempts/:attempt_id/submit", quizCtrl.SubmitAttempt)
		userAPIGroup.GET("/quizzes/:quiz_id/my-attempts", quizCtrl.GetUserAttempts)

		// Progress
		userAPIGroup.GET("/progress", progressCtrl.GetProgress)

		// Chatbot
		userAPIGroup.POST("/chatbot/messages", chatbotCtrl.ProcessMessage)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("English Learning API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.Attempt{},
		&model.ProgressRecord{},
		&model.SavedWord{},
		&model.CompletedLesson{},
		&model.LearningActivity{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")

	return database.SeedSampleQuizzes(db)
}
