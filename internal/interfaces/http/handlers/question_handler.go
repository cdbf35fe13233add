package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/respond"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// QuestionService answers one legal question end to end.
type QuestionService interface {
	Ask(ctx context.Context, question string) (respond.Response, error)
}

// QuestionHandler serves POST /api/question.
type QuestionHandler struct {
	svc     QuestionService
	history corpus.FeedbackStore // nil disables history recording
	log     logging.Logger
}

// NewQuestionHandler wires the handler; history may be nil.
func NewQuestionHandler(svc QuestionService, history corpus.FeedbackStore, log logging.Logger) *QuestionHandler {
	return &QuestionHandler{svc: svc, history: history, log: log.Named("question_handler")}
}

type questionRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask handles POST /api/question.
func (h *QuestionHandler) Ask(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAppError(c, errors.InvalidParam("question is required"))
		return
	}

	resp, err := h.svc.Ask(c.Request.Context(), req.Question)
	if err != nil {
		writeAppError(c, err)
		return
	}

	if h.history != nil {
		entry := corpus.HistoryEntry{
			Question: resp.Question,
			Answer:   resp.Answer,
			Category: resp.Search.Category,
		}
		if _, err := h.history.SaveHistory(c.Request.Context(), entry); err != nil {
			// History is best effort; the answer still goes out.
			h.log.Warn("saving history failed", logging.Err(err))
		}
	}

	c.JSON(http.StatusOK, resp)
}
