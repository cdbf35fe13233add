package analyze

import (
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/index"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/segment"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/intelligence/textrank"
)

// AnalysisResult is everything extracted from one question.  It is produced
// fresh per question and carried through retrieval into the response trace.
type AnalysisResult struct {
	OriginalText     string               `json:"original_text"`
	Tokens           []string             `json:"tokens"`
	TFIDFKeywords    []index.ScoredTerm   `json:"tfidf_keywords"`
	TextRankKeywords []string             `json:"textrank_keywords"`
	LegalKeywords    []index.LegalKeyword `json:"legal_keywords"`
	Category         string               `json:"category"`
	CategoryScores   []CategoryScore      `json:"category_scores"`
	Entities         []Entity             `json:"entities"`
	Actions          []string             `json:"actions"`
}

// Analyzer orchestrates segmentation, keyword extraction, classification
// and entity extraction over one question.
type Analyzer struct {
	seg   *segment.Segmenter
	idx   *index.Index
	dict  index.Dictionary
	table []CategoryEntry
	topK  int
	log   logging.Logger
}

// NewAnalyzer wires an Analyzer over prebuilt index artifacts.  The
// segmenter is primed with the dictionary terms so corpus title vocabulary
// segments as whole words.  The laws index supplies the IDF weights for
// question keyword scoring.
func NewAnalyzer(seg *segment.Segmenter, arts index.Artifacts, table []CategoryEntry, topK int, log logging.Logger) *Analyzer {
	seg.AddBiasTerms(arts.Dictionary.Terms())
	return &Analyzer{
		seg:   seg,
		idx:   arts.Laws,
		dict:  arts.Dictionary,
		table: table,
		topK:  topK,
		log:   log.Named("analyzer"),
	}
}

// Analyze runs the full analysis pipeline over one question.
func (a *Analyzer) Analyze(text string) AnalysisResult {
	toks := a.seg.Tokenize(text)

	res := AnalysisResult{
		OriginalText:     text,
		Tokens:           toks,
		TFIDFKeywords:    a.idx.TopKeywordsScored(toks, a.topK),
		TextRankKeywords: textrank.TopKeywords(toks, a.topK),
		LegalKeywords:    a.dict.MatchTokens(toks, a.topK),
	}
	res.Category, res.CategoryScores = Classify(text, a.table)
	res.Entities, res.Actions = Extract(text)

	a.log.Debug("question analyzed",
		logging.Int("tokens", len(toks)),
		logging.Int("legal_keywords", len(res.LegalKeywords)),
		logging.String("category", res.Category),
	)
	return res
}
