package vocab

// Entry is a single vocabulary item from the dataset.
// Entries are compared structurally; the same characters may appear in
// several lessons, books, or levels.
type Entry struct {
	Pinyin     string `json:"pinyin" yaml:"pinyin"`
	Characters string `json:"characters" yaml:"characters"`
	English    string `json:"english" yaml:"english"`
	Lesson     string `json:"lesson" yaml:"lesson"`
	Book       string `json:"book" yaml:"book"`
	Level      string `json:"level" yaml:"level"`
}

// Format identifies the encoding of a dataset file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)
