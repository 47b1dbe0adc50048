package main

import (
	"fmt"
	"log"
	"time"

	"studyquiz-service/internal/auth"
	"studyquiz-service/internal/cache"
	"studyquiz-service/internal/config"
	"studyquiz-service/internal/db"
	"studyquiz-service/internal/event"
	"studyquiz-service/internal/handlers"
	"studyquiz-service/internal/repository"
	"studyquiz-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)

	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	// Redis dashboard cache
	var statsCache *cache.Cache
	if cfg.RedisURI != "" {
		var err error
		statsCache, err = cache.New(cfg.RedisURI)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer statsCache.Close()
	} else {
		log.Println("Redis not configured, dashboard stats will not be cached")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	// Repositories
	questionRepo := repository.NewQuestionRepository(database)
	documentRepo := repository.NewDocumentRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	responseRepo := repository.NewResponseRepository(database)
	feedbackRepo := repository.NewFeedbackRepository(database)

	// Services
	sessionService := service.NewSessionService(sessionRepo, responseRepo, questionRepo, statsCache)
	answerService := service.NewAnswerService(responseRepo, questionRepo)
	analyticsService := service.NewAnalyticsService(sessionRepo, responseRepo, questionRepo)
	dashboardService := service.NewDashboardService(documentRepo, questionRepo, sessionRepo, responseRepo, statsCache)
	documentService := service.NewDocumentService(documentRepo)
	questionService := service.NewQuestionService(questionRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	exportService := service.NewExportService(documentRepo, questionRepo, sessionRepo, responseRepo, feedbackRepo)

	// Handlers
	quizHandler := handlers.NewQuizHandler(sessionService, answerService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	libraryHandler := handlers.NewLibraryHandler(documentService, questionService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	exportHandler := handlers.NewExportHandler(exportService)

	setupRoutes(r, cfg.JWTSecret, publisher,
		quizHandler, analyticsHandler, dashboardHandler,
		libraryHandler, feedbackHandler, exportHandler)

	r.Run(":" + cfg.Port)
}

func setupRoutes(
	r *gin.Engine,
	jwtSecret string,
	publisher *event.EventPublisher,
	quizHandler *handlers.QuizHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	dashboardHandler *handlers.DashboardHandler,
	libraryHandler *handlers.LibraryHandler,
	feedbackHandler *handlers.FeedbackHandler,
	exportHandler *handlers.ExportHandler,
) {
	protected := r.Group("/protected/study")
	protected.Use(auth.Middleware(jwtSecret))

	protected.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[STUDY] %v | %3d | %13v | %15s | %-7s %#v\n%s",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			param.Method,
			param.Path,
			param.ErrorMessage,
		)
	}))

	// === QUIZ LIFECYCLE ===

	quiz := protected.Group("/quiz")
	{
		quiz.POST("/start", func(c *gin.Context) {
			quizHandler.StartQuiz(c)
			if publisher != nil {
				publisher.Publish(event.SessionStarted, gin.H{
					"user_id":   auth.UserID(c),
					"timestamp": time.Now(),
				})
			}
		})

		quiz.POST("/submit", func(c *gin.Context) {
			quizHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish(event.AnswerSubmitted, gin.H{
					"user_id":   auth.UserID(c),
					"timestamp": time.Now(),
				})
			}
		})

		quiz.POST("/complete", func(c *gin.Context) {
			quizHandler.CompleteQuiz(c)
			if publisher != nil {
				publisher.Publish(event.SessionCompleted, gin.H{
					"user_id":   auth.UserID(c),
					"timestamp": time.Now(),
				})
			}
		})
	}

	// === ANALYTICS AND DASHBOARD ===

	protected.GET("/analytics", analyticsHandler.GetAnalytics)
	protected.GET("/dashboard/stats", dashboardHandler.GetStats)

	// === LIBRARY ===

	protected.GET("/documents", libraryHandler.ListDocuments)
	protected.GET("/questions", libraryHandler.ListQuestions)
	protected.GET("/export", exportHandler.ExportAll)

	// === FEEDBACK ===

	protected.POST("/feedback", func(c *gin.Context) {
		feedbackHandler.SubmitFeedback(c)
		if publisher != nil {
			publisher.Publish(event.FeedbackSubmitted, gin.H{
				"user_id":   auth.UserID(c),
				"timestamp": time.Now(),
			})
		}
	})
	protected.GET("/feedback", feedbackHandler.ListFeedback)
}
