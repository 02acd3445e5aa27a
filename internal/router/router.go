package router

import (
	"askhub/internal/handlers"
	"askhub/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Questions *handlers.QuestionHandler
	Answers   *handlers.AnswerHandler
	Votes     *handlers.VoteHandler
	Tags      *handlers.TagHandler
}

// RegisterRoutes wires the route table. Voting is open to anonymous visitors;
// posting questions/answers and marking solutions require login; tag curation
// is checked inside the tag handler against the actor's capabilities.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, h Handlers) {
	r.Use(middleware.LoadUser(db))

	r.POST("/signup", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)

	r.GET("/questions", h.Questions.List)
	r.GET("/questions/:id", h.Questions.Detail)
	r.GET("/tags", h.Tags.Vocabulary)

	// Anonymous voting is allowed; the session token dedupes repeat votes.
	r.POST("/questions/:id/vote", h.Votes.QuestionVote)
	r.POST("/questions/:id/answers/:answer_id/vote", h.Votes.AnswerVote)

	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/questions", h.Questions.Create)
		authorized.POST("/questions/:id/answers", h.Answers.Create)
		authorized.POST("/questions/:id/solution/:answer_id", h.Answers.MarkSolution)
		authorized.DELETE("/questions/:id/solution", h.Answers.UnmarkSolution)
		authorized.POST("/questions/:id/tags", h.Tags.Add)
		authorized.DELETE("/questions/:id/tags/:name", h.Tags.Remove)
	}
}
