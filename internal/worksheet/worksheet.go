// Package worksheet renders printable handwriting practice sheets.
package worksheet

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/abhisek/hanzi/internal/filter"
	"github.com/abhisek/hanzi/internal/vocab"
)

// CellsPerRow is the number of practice cells drawn for each character,
// including the example cell.
const CellsPerRow = 10

// wordsPerPage controls how many words fit before a forced page break.
const wordsPerPage = 3

//go:embed worksheet.html.tmpl
var pageSource string

var page = template.Must(template.New("worksheet").Parse(pageSource))

type word struct {
	vocab.Entry
	PageBreak bool
	Glyphs    []string
}

type pageData struct {
	LessonLabel string
	Words       []word
	Blank       []struct{}
}

// LessonLabel returns the header label for the selected lesson.
func LessonLabel(selectedLesson string) string {
	if selectedLesson == filter.All {
		return "All Lessons 所有課程"
	}
	r := []rune(selectedLesson)
	rest := ""
	if len(r) > 1 {
		rest = string(r[1:])
	}
	return fmt.Sprintf("Lesson %s 第%s課", selectedLesson, rest)
}

// Render writes the worksheet for entries to w.
func Render(w io.Writer, selectedLesson string, entries []vocab.Entry) error {
	data := pageData{
		LessonLabel: LessonLabel(selectedLesson),
		Words:       make([]word, len(entries)),
		Blank:       make([]struct{}, CellsPerRow-1),
	}
	for i, e := range entries {
		glyphs := make([]string, 0, len(e.Characters))
		for _, r := range e.Characters {
			glyphs = append(glyphs, string(r))
		}
		data.Words[i] = word{
			Entry:     e,
			PageBreak: i > 0 && i%wordsPerPage == 0,
			Glyphs:    glyphs,
		}
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("render worksheet: %w", err)
	}
	return nil
}
