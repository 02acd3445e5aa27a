package handlers

import (
	"net/http"

	"askhub/internal/middleware"
	"askhub/internal/services"
	"askhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes  *services.VoteService
	resync *services.ResyncService
}

func NewVoteHandler(votes *services.VoteService, resync *services.ResyncService) *VoteHandler {
	return &VoteHandler{votes: votes, resync: resync}
}

// QuestionVote handles "I have this problem too". Anonymous voters are
// identified by their session token. Voting twice is not an error; the
// duplicate is absorbed and the current count returned either way.
func (h *VoteHandler) QuestionVote(c *gin.Context) {
	questionID := uint(utils.StringToInt(c.Param("id")))
	identity := middleware.ResolveIdentity(c)

	accepted, err := h.votes.RecordQuestionVote(questionID, identity)
	if err != nil {
		RespondError(c, err)
		return
	}
	if accepted {
		h.resync.Schedule(questionID)
	}

	count, err := h.votes.CountVotes(questionID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"num_votes": count,
		"has_voted": true,
	})
}

type answerVoteRequest struct {
	Helpful bool `json:"helpful"`
}

// AnswerVote records a helpful/not-helpful judgment on an answer.
func (h *VoteHandler) AnswerVote(c *gin.Context) {
	answerID := uint(utils.StringToInt(c.Param("answer_id")))
	identity := middleware.ResolveIdentity(c)

	var req answerVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.votes.RecordAnswerVote(answerID, identity, req.Helpful); err != nil {
		RespondError(c, err)
		return
	}

	helpful, err := h.votes.CountHelpful(answerID)
	if err != nil {
		RespondError(c, err)
		return
	}
	total, err := h.votes.CountTotal(answerID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"num_helpful": helpful,
		"num_votes":   total,
		"has_voted":   true,
	})
}
