package segment

// baseLexicon seeds the segmentation dictionary with multi-character terms
// common in Taiwanese legal text and everyday incident descriptions.  Terms
// learned from corpus titles are added on top of this via AddBiasTerms.
var baseLexicon = []string{
	// statutes and bodies of law
	"刑法", "民法", "憲法", "刑事訴訟法", "民事訴訟法", "行政訴訟法",
	"行政程序法", "行政罰法", "公司法", "勞動基準法", "勞基法",
	"著作權法", "商標法", "專利法", "消費者保護法", "道路交通管理處罰條例",
	"家庭暴力防治法", "兒童及少年福利與權益保障法", "個人資料保護法",
	"洗錢防制法", "證券交易法", "稅捐稽徵法", "土地法", "強制執行法",

	// procedure and institutions
	"法院", "地方法院", "高等法院", "最高法院", "行政法院", "大法官",
	"檢察官", "檢察署", "法官", "律師", "書記官", "調解委員會",
	"起訴", "公訴", "自訴", "告訴", "告發", "不起訴", "緩起訴",
	"上訴", "抗告", "再審", "非常上訴", "判決", "裁定", "和解", "調解",
	"假執行", "假扣押", "假處分", "強制執行", "支付命令", "存證信函",

	// criminal law
	"犯罪", "故意", "過失", "未遂", "既遂", "共犯", "正犯", "幫助犯",
	"竊盜", "搶奪", "強盜", "詐欺", "詐騙", "侵占", "背信", "恐嚇",
	"傷害", "重傷", "殺人", "過失致死", "過失傷害", "妨害自由",
	"妨害名譽", "誹謗", "公然侮辱", "妨害性自主", "性騷擾",
	"酒駕", "肇事逃逸", "毒品", "賭博", "偽造文書", "偽證",
	"緩刑", "易科罰金", "拘役", "有期徒刑", "無期徒刑", "罰金", "沒收",

	// civil law
	"契約", "合約", "買賣", "租賃", "借貸", "贈與", "承攬", "委任",
	"債務", "債權", "債務人", "債權人", "清償", "給付", "遲延",
	"損害賠償", "賠償", "慰撫金", "精神賠償", "違約金", "定金", "保證金",
	"侵權行為", "不當得利", "無因管理", "時效", "消滅時效",
	"所有權", "抵押權", "質權", "留置權", "地上權", "不動產", "動產",
	"登記", "過戶", "繼承", "遺產", "遺囑", "特留分", "拋棄繼承",

	// family law
	"婚姻", "結婚", "離婚", "夫妻", "配偶", "監護權", "親權",
	"扶養", "贍養費", "扶養費", "探視權", "收養", "家庭暴力", "保護令",

	// labor and commercial
	"雇主", "勞工", "僱傭", "解僱", "資遣", "資遣費", "退休金",
	"工資", "薪資", "加班費", "職業災害", "勞保", "健保",
	"公司", "股東", "董事", "股份", "合夥", "商標", "專利", "著作權",
	"營業秘密", "競業禁止",

	// administrative
	"行政處分", "訴願", "行政訴訟", "國家賠償", "罰鍰", "裁罰",
	"主管機關", "許可", "執照", "稅務", "徵收",

	// incident vocabulary
	"車禍", "交通事故", "追撞", "撞到", "路人", "行人", "機車", "汽車",
	"受傷", "死亡", "住院", "醫藥費", "修理費", "保險", "理賠",
	"房東", "房客", "押金", "租金", "欠錢", "還錢", "借錢", "匯款",
	"網路購物", "網拍", "退貨", "退款", "瑕疵",
}
