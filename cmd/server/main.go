package main

import (
	"log"

	"askhub/internal/config"
	"askhub/internal/db"
	"askhub/internal/handlers"
	"askhub/internal/router"
	"askhub/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}
	cfg := config.Load()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	voteService := services.NewVoteService(conn, cfg.VoteWindowDays)
	questionService := services.NewQuestionService(conn)
	tagService := services.NewTagService(conn)
	resyncService := services.NewResyncService(conn, voteService, cfg.VoteWindowDays, cfg.ResyncInterval)
	resyncService.Start()

	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("askhub_session", store))

	router.RegisterRoutes(r, conn, router.Handlers{
		Auth:      handlers.NewAuthHandler(conn),
		Questions: handlers.NewQuestionHandler(questionService, voteService, tagService, resyncService),
		Answers:   handlers.NewAnswerHandler(questionService),
		Votes:     handlers.NewVoteHandler(voteService, resyncService),
		Tags:      handlers.NewTagHandler(tagService),
	})

	log.Printf("askhub server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
