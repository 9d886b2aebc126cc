package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"craftquiz/internal/cache"
	"craftquiz/internal/config"
	"craftquiz/internal/db"
	"craftquiz/internal/gemini"
	"craftquiz/internal/handler"
	"craftquiz/internal/pdftext"
	"craftquiz/internal/repository"
	"craftquiz/internal/router"
	"craftquiz/internal/service"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := db.NewMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo init: %v", err)
	}
	log.Println("MongoDB connected")

	database := mongoClient.Database(cfg.MongoDB)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}

	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer geminiClient.Close()

	userRepo := repository.NewUserRepository(database)
	authService := service.NewAuthService(userRepo)
	quizService := service.NewQuizService(geminiClient, pdftext.New())

	slot := cache.NewQuizSlot()
	authHandler := handler.NewAuthHandler(authService)
	quizHandler := handler.NewQuizHandler(quizService, slot, cfg.UploadDir)

	e := echo.New()
	e.Use(middleware.RequestID())
	router.Register(e, authHandler, quizHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
