package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
)

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

// CorpusHandler serves law and case lookup endpoints.
type CorpusHandler struct {
	store corpus.Store
}

// NewCorpusHandler wires the handler.
func NewCorpusHandler(store corpus.Store) *CorpusHandler {
	return &CorpusHandler{store: store}
}

// ListLaws handles GET /api/laws?keyword=&category=&limit=.
func (h *CorpusHandler) ListLaws(c *gin.Context) {
	keywords := splitKeywords(c.Query("keyword"))
	limit := parseLimit(c, defaultListLimit, maxListLimit)

	docs, err := h.store.SearchLaws(c.Request.Context(), keywords, c.Query("category"), limit)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"laws": docs, "count": len(docs)})
}

// GetLaw handles GET /api/laws/:id.
func (h *CorpusHandler) GetLaw(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	doc, err := h.store.GetLaw(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListCases handles GET /api/cases?keyword=&case_type=&limit=.
func (h *CorpusHandler) ListCases(c *gin.Context) {
	keywords := splitKeywords(c.Query("keyword"))
	limit := parseLimit(c, defaultListLimit, maxListLimit)

	docs, err := h.store.SearchCases(c.Request.Context(), keywords, c.Query("case_type"), limit)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cases": docs, "count": len(docs)})
}

// GetCase handles GET /api/cases/:id.
func (h *CorpusHandler) GetCase(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	doc, err := h.store.GetCase(c.Request.Context(), id)
	if err != nil {
		writeAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// splitKeywords turns a space- or comma-separated keyword parameter into a
// keyword list, dropping empties.
func splitKeywords(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '　'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
