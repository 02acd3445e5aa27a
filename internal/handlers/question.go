package handlers

import (
	"fmt"
	"net/http"
	"time"

	"askhub/internal/middleware"
	"askhub/internal/models"
	"askhub/internal/services"
	"askhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questions *services.QuestionService
	votes     *services.VoteService
	tags      *services.TagService
	resync    *services.ResyncService
}

func NewQuestionHandler(questions *services.QuestionService, votes *services.VoteService,
	tags *services.TagService, resync *services.ResyncService) *QuestionHandler {
	return &QuestionHandler{questions: questions, votes: votes, tags: tags, resync: resync}
}

// List serves the filtered, sorted, paginated question listing.
func (h *QuestionHandler) List(c *gin.Context) {
	filter := c.Query("filter")
	sort := c.Query("sort")
	page := utils.PageParam(c.Query("page"))
	actor := middleware.CurrentUser(c)

	// The anonymous default listing is hot and identical for everyone.
	cacheable := actor == nil && filter == "" && sort == ""
	cacheKey := fmt.Sprintf("questions:list:page:%d", page)
	if cacheable {
		if cached := utils.GetCache().Get(cacheKey); cached != nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	result, err := h.questions.ListQuestions(services.ListOptions{
		Filter: filter,
		Sort:   sort,
		Page:   page,
		Actor:  actor,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	payload := gin.H{
		"questions":  questionListPayload(result.Questions),
		"pagination": result.Pagination,
		"filter":     result.Filter,
		"sort":       result.Sort,
	}
	if cacheable {
		utils.GetCache().Set(cacheKey, payload, time.Minute)
	}
	c.JSON(http.StatusOK, payload)
}

// Detail serves a question with one page of its answers, the helpful-answer
// set and everything the page needs to decide whether to render vote forms.
func (h *QuestionHandler) Detail(c *gin.Context) {
	question, err := h.questions.GetQuestion(uint(utils.StringToInt(c.Param("id"))))
	if err != nil {
		RespondError(c, err)
		return
	}

	page := utils.PageParam(c.Query("page"))
	answers, pagination, err := h.questions.ListAnswers(question.ID, page)
	if err != nil {
		RespondError(c, err)
		return
	}

	identity := middleware.ResolveIdentity(c)
	hasVoted, err := h.votes.HasVotedQuestion(question.ID, identity)
	if err != nil {
		RespondError(c, err)
		return
	}

	helpful, err := h.votes.HelpfulAnswers(question)
	if err != nil {
		RespondError(c, err)
		return
	}

	actor := middleware.CurrentUser(c)
	isContributor, err := h.questions.IsContributor(question, actor)
	if err != nil {
		RespondError(c, err)
		return
	}

	metadata, err := h.questions.Metadata(question.ID)
	if err != nil {
		RespondError(c, err)
		return
	}

	vocab, err := h.tags.Vocabulary()
	if err != nil {
		RespondError(c, err)
		return
	}

	answerViews := make([]gin.H, 0, len(answers))
	for i := range answers {
		answerViews = append(answerViews, h.answerPayload(&answers[i], identity))
	}
	helpfulViews := make([]gin.H, 0, len(helpful))
	for i := range helpful {
		helpfulViews = append(helpfulViews, h.answerPayload(&helpful[i], identity))
	}

	canTag := actor != nil && actor.CanTag()
	c.JSON(http.StatusOK, gin.H{
		"question":        questionPayload(question),
		"content_parsed":  utils.RenderMarkdown(question.Content),
		"has_voted":       hasVoted,
		"is_contributor":  isContributor,
		"metadata":        metadata,
		"answers":         answerViews,
		"pagination":      pagination,
		"helpful_answers": helpfulViews,
		"tag_vocab":       vocab,
		"can_tag":         canTag,
		"can_create_tags": actor != nil && actor.CanCreateTags(),
	})
}

type newQuestionRequest struct {
	Title    string            `json:"title" binding:"required"`
	Content  string            `json:"content" binding:"required"`
	Metadata map[string]string `json:"metadata"`
}

// Create posts a new question. Submitting a question counts as a vote from
// its creator, so fresh questions enter the requested ranking immediately.
func (h *QuestionHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req newQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questions.CreateQuestion(actor, req.Title, req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	if len(req.Metadata) > 0 {
		if err := h.questions.AddMetadata(question.ID, req.Metadata); err != nil {
			RespondError(c, err)
			return
		}
	}

	identity := models.AuthenticatedIdentity(actor.ID)
	if accepted, err := h.votes.RecordQuestionVote(question.ID, identity); err == nil && accepted {
		h.resync.Schedule(question.ID)
	}

	c.JSON(http.StatusCreated, gin.H{"question": questionPayload(question)})
}

func questionPayload(q *models.Question) gin.H {
	tags := make([]string, 0, len(q.Tags))
	for _, tag := range q.Tags {
		tags = append(tags, tag.Name)
	}
	return gin.H{
		"id":                  q.ID,
		"title":               q.Title,
		"creator_id":          q.CreatorID,
		"num_answers":         q.NumAnswers,
		"updated":             q.UpdatedAt,
		"solution_id":         q.SolutionID,
		"is_solved":           q.IsSolved(),
		"is_locked":           q.IsLocked,
		"num_votes_past_week": q.NumVotesPastWeek,
		"tags":                tags,
	}
}

func questionListPayload(questions []models.Question) []gin.H {
	views := make([]gin.H, 0, len(questions))
	for i := range questions {
		views = append(views, questionPayload(&questions[i]))
	}
	return views
}

func (h *QuestionHandler) answerPayload(a *models.Answer, identity models.Identity) gin.H {
	hasVoted, _ := h.votes.HasVotedAnswer(a.ID, identity)
	helpfulCount, _ := h.votes.CountHelpful(a.ID)
	return gin.H{
		"id":             a.ID,
		"question_id":    a.QuestionID,
		"creator":        a.Creator.Username,
		"content_parsed": utils.RenderMarkdown(a.Content),
		"created":        a.CreatedAt,
		"num_helpful":    helpfulCount,
		"has_voted":      hasVoted,
	}
}
