package handlers

import (
	"net/http"

	"askhub/internal/middleware"
	"askhub/internal/services"
	"askhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tags *services.TagService
}

func NewTagHandler(tags *services.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

type addTagRequest struct {
	Name string `json:"name"`
}

// Add attaches a tag to a question. Requires the tagging capability; creating
// a previously unknown tag additionally requires the tag-creation capability.
func (h *TagHandler) Add(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil || !actor.CanTag() {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	var req addTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	questionID := uint(utils.StringToInt(c.Param("id")))
	canonical, err := h.tags.AddTag(questionID, req.Name, actor.CanCreateTags())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"canonicalName": canonical})
}

// Remove detaches a tag from a question. No-op if the question does not have
// the tag.
func (h *TagHandler) Remove(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil || !actor.CanTag() {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	questionID := uint(utils.StringToInt(c.Param("id")))
	if err := h.tags.RemoveTag(questionID, c.Param("name")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Vocabulary lists all canonical tag names.
func (h *TagHandler) Vocabulary(c *gin.Context) {
	vocab, err := h.tags.Vocabulary()
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": vocab})
}
