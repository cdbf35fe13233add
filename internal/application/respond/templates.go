// Package respond composes the final advisory answer from retrieval
// results: templated law/case citations, category-specific advice and
// courtroom strategy, and a closing disclaimer.
package respond

import (
	"encoding/json"
	"os"

	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// Catalog holds the response template variants, one slice per section
// group.  Slots use {name} markers filled at composition time.
type Catalog struct {
	GeneralLawQuery []string `json:"general_law_query"`
	CaseReference   []string `json:"case_reference"`
	LegalAdvice     []string `json:"legal_advice"`
	CourtStrategy   []string `json:"court_strategy"`
	NoRelevantInfo  []string `json:"no_relevant_info"`
}

// DefaultCatalog returns the built-in template catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		GeneralLawQuery: []string{
			"根據{law_name}，{law_content}",
			"依照{law_name}的規定，{law_content}",
			"參考{law_name}，相關法律規定為：{law_content}",
		},
		CaseReference: []string{
			"在類似案例中（{case_title}），法院判決指出：{case_content}",
			"參考{case_title}的判例，{case_content}",
			"根據{case_title}的先例，法院認為：{case_content}",
		},
		LegalAdvice: []string{
			"針對您的情況，建議您：\n1. {advice_1}\n2. {advice_2}\n3. {advice_3}",
			"從法律角度考慮，您可以：\n- {advice_1}\n- {advice_2}\n- {advice_3}",
			"基於相關法規和判例，您應該：\n1) {advice_1}\n2) {advice_2}\n3) {advice_3}",
		},
		CourtStrategy: []string{
			"在法庭上，您可以採取以下策略：\n1. {strategy_1}\n2. {strategy_2}\n3. {strategy_3}",
			"為了在法庭上取得有利結果，您可以：\n- {strategy_1}\n- {strategy_2}\n- {strategy_3}",
			"法庭攻防建議：\n1) {strategy_1}\n2) {strategy_2}\n3) {strategy_3}",
		},
		NoRelevantInfo: []string{
			"抱歉，目前系統中沒有與您問題直接相關的法規或判例。建議您諮詢專業律師獲取更準確的法律建議。",
			"您的問題涉及的法律領域可能較為特殊，系統未找到相關法規或判例。建議尋求專業律師協助。",
			"系統未能找到與您問題完全匹配的法律資訊。如需進一步協助，請考慮諮詢法律專業人士。",
		},
	}
}

// LoadCatalog reads a template catalog from a JSON file.  Groups absent
// from the file fall back to the built-in variants.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Wrap(err, errors.ErrCodeTemplateMissing, "reading template catalog")
	}
	cat := Catalog{}
	if err := json.Unmarshal(data, &cat); err != nil {
		return Catalog{}, errors.Wrap(err, errors.ErrCodeTemplateMissing, "decoding template catalog")
	}
	def := DefaultCatalog()
	if len(cat.GeneralLawQuery) == 0 {
		cat.GeneralLawQuery = def.GeneralLawQuery
	}
	if len(cat.CaseReference) == 0 {
		cat.CaseReference = def.CaseReference
	}
	if len(cat.LegalAdvice) == 0 {
		cat.LegalAdvice = def.LegalAdvice
	}
	if len(cat.CourtStrategy) == 0 {
		cat.CourtStrategy = def.CourtStrategy
	}
	if len(cat.NoRelevantInfo) == 0 {
		cat.NoRelevantInfo = def.NoRelevantInfo
	}
	return cat, nil
}

// Validate ensures every template group has at least one variant.
func (c Catalog) Validate() error {
	groups := map[string][]string{
		"general_law_query": c.GeneralLawQuery,
		"case_reference":    c.CaseReference,
		"legal_advice":      c.LegalAdvice,
		"court_strategy":    c.CourtStrategy,
		"no_relevant_info":  c.NoRelevantInfo,
	}
	for name, variants := range groups {
		if len(variants) == 0 {
			return errors.Newf(errors.ErrCodeTemplateMissing, "template group %s has no variants", name)
		}
	}
	return nil
}
