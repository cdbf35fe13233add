// Package analyze turns a raw legal question into an AnalysisResult:
// ranked keywords, legal-dictionary hits, a question category, and shallow
// entity/action extraction.
package analyze

// CategoryEntry pairs a legal category with its trigger keywords.
type CategoryEntry struct {
	Name     string
	Keywords []string
}

// DefaultCategoryTable returns the built-in category→keyword table.  The
// slice order is significant: classification ties break toward the earlier
// entry, so the table must stay an ordered list, never a map.
func DefaultCategoryTable() []CategoryEntry {
	return []CategoryEntry{
		{Name: "刑事", Keywords: []string{
			"殺人", "傷害", "竊盜", "搶奪", "詐欺", "背信", "侵占", "賄賂",
			"貪污", "偽造文書", "妨害性自主", "妨害自由", "妨害名譽", "毒品",
			"槍砲", "公共危險",
		}},
		{Name: "民事", Keywords: []string{
			"買賣", "租賃", "借貸", "保證", "抵押", "質押", "贈與", "遺囑",
			"繼承", "侵權", "損害賠償", "債務", "契約", "婚姻", "離婚",
			"監護", "扶養", "贍養費",
		}},
		{Name: "行政", Keywords: []string{
			"訴願", "行政訴訟", "國家賠償", "政府機關", "行政處分", "行政罰",
			"稅務", "關稅", "地政", "都市計畫", "建築管理", "環境保護",
			"公務員", "選舉", "罷免",
		}},
		{Name: "商業", Keywords: []string{
			"公司", "商標", "專利", "著作權", "智慧財產", "股東", "董事",
			"監察人", "經理人", "合夥", "破產", "重整", "證券", "期貨",
			"保險", "票據", "海商", "仲裁",
		}},
		{Name: "勞工", Keywords: []string{
			"勞動契約", "工資", "工時", "休假", "退休", "資遣", "職業災害",
			"勞工保險", "工會", "團體協約", "勞資爭議", "性別歧視",
			"就業歧視", "職業安全衛生",
		}},
		{Name: "家事", Keywords: []string{
			"結婚", "離婚", "子女", "親權", "監護", "收養", "扶養", "贍養費",
			"遺產", "繼承", "遺囑", "家庭暴力", "親屬", "家庭", "婚姻",
		}},
	}
}

// CaseTypeForCategory maps a question category to the court-case type used
// as the retrieval filter.  Business, labor and family disputes are tried
// as civil cases.  Unknown or empty categories return "" (no filter).
func CaseTypeForCategory(category string) string {
	switch category {
	case "刑事":
		return "刑事"
	case "民事", "商業", "勞工", "家事":
		return "民事"
	case "行政":
		return "行政"
	default:
		return ""
	}
}
