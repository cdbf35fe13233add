package respond

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/analyze"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/search"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// disclaimer closes every answer assembled from retrieval results.
const disclaimer = "請注意：以上建議僅供參考，不構成法律意見。具體情況可能有所不同，建議您諮詢專業律師獲取針對您具體情況的法律建議。"

// Response is the final deliverable for one question, including the full
// analysis and retrieval trace.
type Response struct {
	Question    string                 `json:"question"`
	Answer      string                 `json:"answer"`
	Analysis    analyze.AnalysisResult `json:"analysis_result"`
	Search      search.Result          `json:"search_result"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// Composer assembles answers from templates and retrieval results.
// Template variant selection is random; tests inject a seeded source.
type Composer struct {
	catalog Catalog
	mu      sync.Mutex
	rng     *rand.Rand
	log     logging.Logger
}

// NewComposer validates the catalog and wires a Composer.  A nil rng gets a
// time-seeded source.
func NewComposer(catalog Catalog, rng *rand.Rand, log logging.Logger) (*Composer, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composer{
		catalog: catalog,
		rng:     rng,
		log:     log.Named("composer"),
	}, nil
}

// Compose builds the final response.  With no retrieved laws or cases the
// answer is a no_relevant_info template alone; otherwise law citation, case
// citation, advice and strategy sections are joined by blank lines and the
// disclaimer is appended.
func (c *Composer) Compose(question string, analysis analyze.AnalysisResult, result search.Result) Response {
	resp := Response{
		Question:    question,
		Analysis:    analysis,
		Search:      result,
		GeneratedAt: time.Now(),
	}

	if len(result.Laws) == 0 && len(result.Cases) == 0 {
		resp.Answer = c.choose(c.catalog.NoRelevantInfo)
		return resp
	}

	var parts []string

	if len(result.Laws) > 0 {
		law := result.Laws[0].Document
		if law.Content == "" {
			c.warnMalformed(law)
		}
		parts = append(parts, strings.NewReplacer(
			"{law_name}", law.Title,
			"{law_content}", LawExcerpt(law.Content),
		).Replace(c.choose(c.catalog.GeneralLawQuery)))
	}

	if len(result.Cases) > 0 {
		kase := result.Cases[0].Document
		if kase.Content == "" {
			c.warnMalformed(kase)
		}
		parts = append(parts, strings.NewReplacer(
			"{case_title}", kase.Title,
			"{case_content}", CaseExcerpt(kase.Content),
		).Replace(c.choose(c.catalog.CaseReference)))
	}

	set := adviceForCategory(result.Category)
	parts = append(parts, strings.NewReplacer(
		"{advice_1}", set.advice[0],
		"{advice_2}", set.advice[1],
		"{advice_3}", set.advice[2],
	).Replace(c.choose(c.catalog.LegalAdvice)))

	if set.hasStrategy {
		parts = append(parts, strings.NewReplacer(
			"{strategy_1}", set.strategy[0],
			"{strategy_2}", set.strategy[1],
			"{strategy_3}", set.strategy[2],
		).Replace(c.choose(c.catalog.CourtStrategy)))
	}

	resp.Answer = strings.Join(parts, "\n\n") + "\n\n" + disclaimer
	c.log.Debug("response composed",
		logging.String("category", result.Category),
		logging.Int("sections", len(parts)),
	)
	return resp
}

// warnMalformed records a document that reached composition with no body;
// the citation is still emitted with an empty excerpt.
func (c *Composer) warnMalformed(doc corpus.Document) {
	c.log.Warn("document has no body",
		logging.Err(errors.New(errors.ErrCodeMalformedDocument, "document has no body")),
		logging.Int64("doc_id", doc.ID),
		logging.String("title", doc.Title),
	)
}

func (c *Composer) choose(variants []string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return variants[c.rng.Intn(len(variants))]
}
