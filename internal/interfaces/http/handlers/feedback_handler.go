package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// FeedbackHandler serves answer-rating and history endpoints.
type FeedbackHandler struct {
	store corpus.FeedbackStore
}

// NewFeedbackHandler wires the handler.
func NewFeedbackHandler(store corpus.FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{store: store}
}

type feedbackRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

// Save handles POST /api/feedback.
func (h *FeedbackHandler) Save(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAppError(c, errors.InvalidParam("question, answer and rating are required"))
		return
	}

	id, err := h.store.SaveFeedback(c.Request.Context(), corpus.Feedback{
		Question: req.Question,
		Answer:   req.Answer,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type historyRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// SaveHistory handles POST /api/history for clients that record entries
// themselves; answering a question records one automatically.
func (h *FeedbackHandler) SaveHistory(c *gin.Context) {
	var req historyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAppError(c, errors.InvalidParam("question is required"))
		return
	}

	id, err := h.store.SaveHistory(c.Request.Context(), corpus.HistoryEntry{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListHistory handles GET /api/history?limit=.
func (h *FeedbackHandler) ListHistory(c *gin.Context) {
	limit := parseLimit(c, 20, 100)
	entries, err := h.store.ListHistory(c.Request.Context(), limit)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries, "count": len(entries)})
}
