package sentencegen

// Roles is the curated table of words the templates draw from. Each list
// names exact dataset characters; a word only fills a role when it is
// present in the vocabulary subset passed to Generate.
type Roles struct {
	Subjects        []string
	Adverbs         []string
	TransitiveVerbs []string
	VerbObjects     []string
	Objects         []string
	Adjectives      []string
	TimeWords       []string
	Places          []string

	// Locative is the marker used by the locative template.
	Locative string
	// Question is the yes/no particle appended by the transitive template.
	Question string
	// Intensifier is the adverb the stative template requires.
	Intensifier string
}

// DefaultRoles returns the role table for the bundled dataset.
func DefaultRoles() Roles {
	return Roles{
		Subjects: []string{
			"我", "你", "他", "她", "我們", "你們", "他們",
			"媽媽", "爸爸", "老師", "同學", "小朋友",
			"王", "李大文", "林東明", "陳心美", "張莉", "方友朋",
		},
		Adverbs:         []string{"很", "也", "都"},
		TransitiveVerbs: []string{"喜歡", "吃", "喝", "看", "買", "要"},
		VerbObjects:     []string{"跑步", "跳舞", "聽音樂", "看書", "看電視", "打球", "游泳"},
		Objects: []string{
			"蘋果", "麵包", "牛奶", "書", "中文", "巧克力", "披薩", "蛋糕",
			"香蕉", "水果", "照片", "手機", "校車", "學校", "公園",
			"超級市場", "果汁", "湯", "糖果", "魚", "玉米", "米", "麵",
		},
		Adjectives: []string{"冷", "熱", "漂亮", "高興", "舒服", "新"},
		TimeWords:  []string{"今天", "明天", "昨天", "現在", "週末"},
		Places: []string{
			"學校", "公園", "家", "外面", "裡面", "前面", "後面", "中間",
			"房間", "超級市場",
		},
		Locative:    "在",
		Question:    "嗎",
		Intensifier: "很",
	}
}
