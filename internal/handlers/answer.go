package handlers

import (
	"net/http"

	"askhub/internal/middleware"
	"askhub/internal/services"
	"askhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	questions *services.QuestionService
}

func NewAnswerHandler(questions *services.QuestionService) *AnswerHandler {
	return &AnswerHandler{questions: questions}
}

type newAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create posts an answer to a question. Requires login.
func (h *AnswerHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req newAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	questionID := uint(utils.StringToInt(c.Param("id")))
	answer, err := h.questions.CreateAnswer(questionID, actor, req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}

	page, err := h.questions.AnswerPage(answer)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          answer.ID,
		"question_id": answer.QuestionID,
		"created":     answer.CreatedAt,
		"page":        page,
	})
}

// MarkSolution accepts an answer as the question's solution. Creator only.
func (h *AnswerHandler) MarkSolution(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	questionID := uint(utils.StringToInt(c.Param("id")))
	answerID := uint(utils.StringToInt(c.Param("answer_id")))

	if err := h.questions.MarkSolution(questionID, answerID, actor); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"solution_id": answerID})
}

// UnmarkSolution retracts the solution. Creator only.
func (h *AnswerHandler) UnmarkSolution(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	questionID := uint(utils.StringToInt(c.Param("id")))

	if err := h.questions.UnmarkSolution(questionID, actor); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"solution_id": nil})
}
