package respond

// adviceSet is the literal advice and strategy text for one category group.
// Strategy is absent for unclassifiable questions.
type adviceSet struct {
	advice      [3]string
	strategy    [3]string
	hasStrategy bool
}

// adviceForCategory resolves the fixed advice tables.  Business, labor and
// family questions share the civil-dispute advice.
func adviceForCategory(category string) adviceSet {
	switch category {
	case "刑事":
		return adviceSet{
			advice: [3]string{
				"保持冷靜，不要自行與對方協商或承認責任",
				"尋求專業刑事律師的協助，詳細說明事件經過",
				"收集並保存所有相關證據，如監控錄像、證人證詞等",
			},
			strategy: [3]string{
				"強調行為的非故意性質，說明當時情況下的合理反應",
				"提出對方可能存在的過失或誇大傷害的情況",
				"如有前科，請律師強調您的改過自新和社會貢獻",
			},
			hasStrategy: true,
		}
	case "民事", "商業", "勞工", "家事":
		return adviceSet{
			advice: [3]string{
				"收集所有相關證據，如合約、通訊記錄、付款證明等",
				"嘗試與對方進行協商，尋求和解可能",
				"如協商不成，可向法院提起民事訴訟，或考慮調解程序",
			},
			strategy: [3]string{
				"清晰陳述事實，並提供充分證據支持您的主張",
				"強調對方違反法律或合約的具體條款",
				"準備好回應對方可能提出的抗辯，並有備用論點",
			},
			hasStrategy: true,
		}
	case "行政":
		return adviceSet{
			advice: [3]string{
				"確認行政處分的法律依據，檢查是否有程序或實體上的瑕疵",
				"在法定期限內提出訴願，向上級機關表達您的異議",
				"如訴願結果不滿意，可向行政法院提起行政訴訟",
			},
			strategy: [3]string{
				"質疑行政機關的裁量是否逾越法律授權範圍",
				"指出行政程序中可能存在的瑕疵或違法情形",
				"引用類似案例的判決結果，支持您的主張",
			},
			hasStrategy: true,
		}
	default:
		return adviceSet{
			advice: [3]string{
				"收集並保存所有相關證據和文件",
				"尋求專業律師的法律諮詢，了解您的權利和可能的法律行動",
				"考慮透過協商、調解等非訴訟方式解決爭議，節省時間和費用",
			},
		}
	}
}
