package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/respond"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/config"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/interfaces/http/middleware"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

type stubQuestions struct {
	resp respond.Response
	err  error
}

func (s *stubQuestions) Ask(_ context.Context, question string) (respond.Response, error) {
	if s.err != nil {
		return respond.Response{}, s.err
	}
	resp := s.resp
	resp.Question = question
	return resp, nil
}

type stubStore struct {
	laws  map[int64]corpus.Document
	cases map[int64]corpus.Document
}

func (s *stubStore) SearchLaws(_ context.Context, _ []string, _ string, _ int) ([]corpus.Document, error) {
	var docs []corpus.Document
	for _, d := range s.laws {
		docs = append(docs, d)
	}
	return docs, nil
}

func (s *stubStore) SearchCases(_ context.Context, _ []string, _ string, _ int) ([]corpus.Document, error) {
	return nil, nil
}

func (s *stubStore) GetLaw(_ context.Context, id int64) (*corpus.Document, error) {
	if d, ok := s.laws[id]; ok {
		return &d, nil
	}
	return nil, errors.Newf(errors.ErrCodeLawNotFound, "law %d not found", id)
}

func (s *stubStore) GetCase(_ context.Context, id int64) (*corpus.Document, error) {
	if d, ok := s.cases[id]; ok {
		return &d, nil
	}
	return nil, errors.Newf(errors.ErrCodeCaseNotFound, "case %d not found", id)
}

func (s *stubStore) InsertLaw(context.Context, corpus.Document) error     { return nil }
func (s *stubStore) InsertCase(context.Context, corpus.Document) error    { return nil }
func (s *stubStore) ListLaws(context.Context) ([]corpus.Document, error)  { return nil, nil }
func (s *stubStore) ListCases(context.Context) ([]corpus.Document, error) { return nil, nil }

type stubFeedback struct {
	history []corpus.HistoryEntry
}

func (s *stubFeedback) SaveFeedback(_ context.Context, fb corpus.Feedback) (int64, error) {
	if fb.Rating < 1 || fb.Rating > 5 {
		return 0, errors.InvalidParam("rating must be between 1 and 5")
	}
	return 1, nil
}

func (s *stubFeedback) SaveHistory(_ context.Context, e corpus.HistoryEntry) (int64, error) {
	s.history = append(s.history, e)
	return int64(len(s.history)), nil
}

func (s *stubFeedback) ListHistory(_ context.Context, _ int) ([]corpus.HistoryEntry, error) {
	return s.history, nil
}

func newTestRouter(t *testing.T, questions *stubQuestions, feedback *stubFeedback) http.Handler {
	t.Helper()
	store := &stubStore{
		laws: map[int64]corpus.Document{
			1: {ID: 1, Type: corpus.DocTypeLaw, Title: "刑法第284條", Content: "因過失傷害人者", Category: "刑事"},
		},
		cases: map[int64]corpus.Document{},
	}
	cfg := config.ServerConfig{Port: 8080, Mode: "test", RatePerMinute: 1000}
	return NewRouter(cfg, RouterDeps{
		Questions: questions,
		Store:     store,
		Feedback:  feedback,
		Version:   "test",
		Log:       logging.NewNopLogger(),
	})
}

func doRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAskEndpoint(t *testing.T) {
	feedback := &stubFeedback{}
	questions := &stubQuestions{resp: respond.Response{
		Answer:      "根據刑法第284條...",
		GeneratedAt: time.Now(),
	}}
	r := newTestRouter(t, questions, feedback)

	w := doRequest(r, http.MethodPost, "/api/question", map[string]string{"question": "我不小心撞到路人"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp respond.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "我不小心撞到路人", resp.Question)
	assert.Contains(t, resp.Answer, "刑法第284條")

	// the exchange lands in history
	require.Len(t, feedback.history, 1)
	assert.Equal(t, "我不小心撞到路人", feedback.history[0].Question)

	// request ID header assigned
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestAskEndpointMissingQuestion(t *testing.T) {
	r := newTestRouter(t, &stubQuestions{}, &stubFeedback{})

	w := doRequest(r, http.MethodPost, "/api/question", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAskEndpointMasksInternalError(t *testing.T) {
	questions := &stubQuestions{err: errors.New(errors.ErrCodeInternal, "index corrupted at offset 42")}
	r := newTestRouter(t, questions, &stubFeedback{})

	w := doRequest(r, http.MethodPost, "/api/question", map[string]string{"question": "問題"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "offset 42")
}

func TestGetLaw(t *testing.T) {
	r := newTestRouter(t, &stubQuestions{}, &stubFeedback{})

	w := doRequest(r, http.MethodGet, "/api/laws/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "刑法第284條")

	w = doRequest(r, http.MethodGet, "/api/laws/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/api/laws/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveFeedback(t *testing.T) {
	r := newTestRouter(t, &stubQuestions{}, &stubFeedback{})

	w := doRequest(r, http.MethodPost, "/api/feedback", map[string]interface{}{
		"question": "問題", "answer": "回答", "rating": 5,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodPost, "/api/feedback", map[string]interface{}{
		"question": "問題", "answer": "回答", "rating": 9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveHistory(t *testing.T) {
	feedback := &stubFeedback{}
	r := newTestRouter(t, &stubQuestions{}, feedback)

	w := doRequest(r, http.MethodPost, "/api/history", map[string]interface{}{
		"question": "離婚需要什麼條件", "category": "家事",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, feedback.history, 1)
	assert.Equal(t, "家事", feedback.history[0].Category)

	w = doRequest(r, http.MethodPost, "/api/history", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t, &stubQuestions{}, &stubFeedback{})
	w := doRequest(r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter(t *testing.T) {
	l := middleware.NewRateLimiter(2)

	ok, remaining := l.Allow("client")
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)

	ok, _ = l.Allow("client")
	assert.True(t, ok)

	ok, _ = l.Allow("client")
	assert.False(t, ok)

	// other clients are unaffected
	ok, _ = l.Allow("other")
	assert.True(t, ok)
}
