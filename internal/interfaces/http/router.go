// Package http is the public HTTP interface: router, middleware chain and
// server lifecycle.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/config"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/interfaces/http/handlers"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/interfaces/http/middleware"
)

// RouterDeps collects everything the router serves.
type RouterDeps struct {
	Questions handlers.QuestionService
	Store     corpus.Store
	Feedback  corpus.FeedbackStore
	Metrics   http.Handler // nil disables /metrics
	Version   string
	Ready     func() bool
	Log       logging.Logger
}

// NewRouter assembles the gin engine with the full middleware chain and
// every API route.
func NewRouter(cfg config.ServerConfig, deps RouterDeps) *gin.Engine {
	gin.SetMode(cfg.Mode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.AccessLog(deps.Log))
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RatePerMinute)))

	health := handlers.NewHealthHandler(deps.Version, deps.Ready)
	r.GET("/healthz", health.Live)
	r.GET("/readyz", health.Ready)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	api := r.Group("/api")
	{
		question := handlers.NewQuestionHandler(deps.Questions, deps.Feedback, deps.Log)
		api.POST("/question", question.Ask)

		cor := handlers.NewCorpusHandler(deps.Store)
		api.GET("/laws", cor.ListLaws)
		api.GET("/laws/:id", cor.GetLaw)
		api.GET("/cases", cor.ListCases)
		api.GET("/cases/:id", cor.GetCase)

		fb := handlers.NewFeedbackHandler(deps.Feedback)
		api.POST("/feedback", fb.Save)
		api.GET("/history", fb.ListHistory)
		api.POST("/history", fb.SaveHistory)
	}

	return r
}
