package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "taskboard/docs"
	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

var logLevels = map[string]logger.LogLevel{
	"silent": logger.Silent,
	"error":  logger.Error,
	"warn":   logger.Warn,
	"info":   logger.Info,
}

func Init(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	// Setup GORM
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevels[cfg.DBLogLevel]),
	})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("❌ failed to get DB handle: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("❌ failed to reach DB: %w", err)
	}
	log.Println("✅ Connected to database")

	return &Server{
		Engine: NewRouter(db, cfg.DBTimeout),
		DB:     db,
		Config: cfg,
	}, nil
}

// NewRouter wires repositories and handlers over db.
func NewRouter(db *gorm.DB, dbTimeout time.Duration) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID(), middleware.Deadline(dbTimeout))

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo)
	boardHandler := handler.NewBoardHandler(boardRepo)
	listHandler := handler.NewListHandler(listRepo)
	cardHandler := handler.NewCardHandler(cardRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// User routes
	r.GET("/users", userHandler.List)
	r.POST("/users", userHandler.Create)

	// Board routes; the first wildcard is always :id (a user id for board creation)
	r.POST("/boards/:id", boardHandler.Create)
	r.POST("/boards/:id/users", boardHandler.AddUser)

	// List routes
	r.GET("/boards/:id/lists", listHandler.GetByBoard)
	r.POST("/boards/:id/lists", listHandler.Create)

	// Card routes; GET /cards/:id takes a list id
	r.POST("/lists/:id/users/:user_id/cards", cardHandler.Create)
	r.GET("/cards/:id", cardHandler.GetByList)
	r.GET("/cards/:id/creator", cardHandler.GetCreator)
	r.POST("/cards/:id/users", cardHandler.AddUser)

	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("✅ Server exited properly")
}
