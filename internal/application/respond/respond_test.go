package respond

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/analyze"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/application/search"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

func newComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer(DefaultCatalog(), rand.New(rand.NewSource(1)), logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func lawMatch(title, content string) search.Match {
	return search.Match{Document: corpus.Document{Type: corpus.DocTypeLaw, Title: title, Content: content}, Similarity: 0.9}
}

func caseMatch(title, content string) search.Match {
	return search.Match{Document: corpus.Document{Type: corpus.DocTypeCase, Title: title, Content: content}, Similarity: 0.8}
}

func TestLawExcerpt(t *testing.T) {
	t.Run("short body verbatim", func(t *testing.T) {
		body := strings.Repeat("法", 200)
		assert.Equal(t, body, LawExcerpt(body))
	})

	t.Run("single long paragraph truncated", func(t *testing.T) {
		body := strings.Repeat("法", 250)
		got := LawExcerpt(body)
		assert.Equal(t, strings.Repeat("法", 200)+"...", got)
	})

	t.Run("longest paragraph preferred", func(t *testing.T) {
		long := strings.Repeat("條", 150)
		body := "短段落\n\n" + long + "\n短尾"
		assert.Equal(t, long, LawExcerpt(body))
	})
}

func TestCaseExcerpt(t *testing.T) {
	t.Run("50-char body verbatim", func(t *testing.T) {
		body := strings.Repeat("判", 50)
		got := CaseExcerpt(body)
		assert.Equal(t, body, got)
		assert.NotContains(t, got, "...")
	})

	t.Run("reasoning section cut at 300 with ellipsis", func(t *testing.T) {
		reasoning := strings.Repeat("理", 900)
		body := "前言文字" + strings.Repeat("甲", 90) + "理由\n" + reasoning
		got := CaseExcerpt(body)
		assert.Equal(t, strings.Repeat("理", 300)+"...", got)
	})

	t.Run("reasoning bounded by next section heading", func(t *testing.T) {
		body := strings.Repeat("甲", 400) + "理由\n事故經過如上所述\n二、" + strings.Repeat("乙", 50)
		got := CaseExcerpt(body)
		assert.Equal(t, "事故經過如上所述", got)
	})

	t.Run("falls back to holding section", func(t *testing.T) {
		body := strings.Repeat("甲", 400) + "主文\n被告應賠償原告新臺幣十萬元"
		got := CaseExcerpt(body)
		assert.Equal(t, "被告應賠償原告新臺幣十萬元", got)
	})

	t.Run("no sections takes leading text", func(t *testing.T) {
		body := strings.Repeat("判", 400)
		assert.Equal(t, strings.Repeat("判", 300)+"...", CaseExcerpt(body))
	})
}

func TestComposeNoRelevantInfo(t *testing.T) {
	c := newComposer(t)
	resp := c.Compose("外星人簽證問題", analyze.AnalysisResult{}, search.Result{})

	assert.Contains(t, DefaultCatalog().NoRelevantInfo, resp.Answer)
	// no advice, strategy or disclaimer sections
	assert.NotContains(t, resp.Answer, "建議您：\n")
	assert.NotContains(t, resp.Answer, disclaimer)
}

func TestComposeCriminalAnswer(t *testing.T) {
	c := newComposer(t)
	result := search.Result{
		Laws:     []search.Match{lawMatch("刑法第284條", "因過失傷害人者，處一年以下有期徒刑、拘役或十萬元以下罰金")},
		Cases:    []search.Match{caseMatch("過失傷害案", "被告駕車不慎撞傷行人，判賠十萬元")},
		Category: "刑事",
	}
	resp := c.Compose("我不小心撞到路人", analyze.AnalysisResult{Category: "刑事"}, result)

	// law citation carries the title and body text
	assert.Contains(t, resp.Answer, "刑法第284條")
	assert.Contains(t, resp.Answer, "因過失傷害人者")
	// case citation
	assert.Contains(t, resp.Answer, "過失傷害案")
	// literal criminal-category advice and strategy text
	assert.Contains(t, resp.Answer, "保持冷靜，不要自行與對方協商或承認責任")
	assert.Contains(t, resp.Answer, "強調行為的非故意性質，說明當時情況下的合理反應")
	assert.Contains(t, resp.Answer, disclaimer)
	// sections separated by blank lines
	assert.GreaterOrEqual(t, strings.Count(resp.Answer, "\n\n"), 4)
}

func TestComposeUnclassifiedOmitsStrategy(t *testing.T) {
	c := newComposer(t)
	result := search.Result{
		Laws: []search.Match{lawMatch("某法", "某條文")},
	}
	resp := c.Compose("問題", analyze.AnalysisResult{}, result)

	assert.Contains(t, resp.Answer, "收集並保存所有相關證據和文件")
	for _, s := range adviceForCategory("刑事").strategy {
		assert.NotContains(t, resp.Answer, s)
	}
	assert.Contains(t, resp.Answer, disclaimer)
}

func TestComposeCivilGroupSharesAdvice(t *testing.T) {
	c := newComposer(t)
	for _, category := range []string{"民事", "商業", "勞工", "家事"} {
		result := search.Result{
			Laws:     []search.Match{lawMatch("民法", "條文")},
			Category: category,
		}
		resp := c.Compose("問題", analyze.AnalysisResult{}, result)
		assert.Contains(t, resp.Answer, "嘗試與對方進行協商，尋求和解可能", "category %s", category)
	}
}

func TestNewComposerRejectsEmptyGroup(t *testing.T) {
	cat := DefaultCatalog()
	cat.LegalAdvice = nil
	_, err := NewComposer(cat, nil, logging.NewNopLogger())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTemplateMissing))
}

func TestLoadCatalog(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeTemplateMissing))
	})

	t.Run("partial file falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "templates.json")
		body := `{"general_law_query": ["{law_name}：{law_content}"]}`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		cat, err := LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"{law_name}：{law_content}"}, cat.GeneralLawQuery)
		assert.Equal(t, DefaultCatalog().NoRelevantInfo, cat.NoRelevantInfo)
		assert.NoError(t, cat.Validate())
	})
}
