// Package filters is the screen for choosing what to study: the
// level, book and lesson cascade plus study mode and card type.
package filters

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/deck"
	"github.com/abhisek/hanzi/internal/filter"
	"github.com/abhisek/hanzi/internal/lesson"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/study"
	"github.com/abhisek/hanzi/internal/ui/components"
	"github.com/abhisek/hanzi/internal/ui/layout"
	"github.com/abhisek/hanzi/internal/ui/theme"
	"github.com/abhisek/hanzi/internal/worksheet"
)

const (
	fieldLevel = iota
	fieldBook
	fieldLesson
	fieldMode
	fieldCardType
	fieldCount
)

// worksheetWrittenMsg reports the outcome of writing the worksheet file.
type worksheetWrittenMsg struct {
	path string
	err  error
}

// FiltersScreen edits the deck selection in place. Every change re-keys
// the study session.
type FiltersScreen struct {
	deck          *deck.Deck
	worksheetPath string
	log           *slog.Logger

	fields [fieldCount]components.Selector
	focus  int
	status string
}

var _ screen.Screen = (*FiltersScreen)(nil)
var _ screen.KeyHintProvider = (*FiltersScreen)(nil)

// New creates the filters screen. Pressing w writes a practice worksheet
// for the current selection to worksheetPath.
func New(d *deck.Deck, worksheetPath string, log *slog.Logger) *FiltersScreen {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &FiltersScreen{
		deck:          d,
		worksheetPath: worksheetPath,
		log:           log,
	}

	s.fields[fieldLevel] = components.Selector{Label: "Level", Format: levelLabel}
	s.fields[fieldBook] = components.Selector{Label: "Book", Format: bookLabel}
	s.fields[fieldLesson] = components.Selector{Label: "Lesson", Format: lessonLabel}
	s.fields[fieldMode] = components.NewSelector("Study mode",
		[]string{string(study.Sequential), string(study.Random)}, string(d.Session().Mode()))
	s.fields[fieldMode].Format = modeLabel
	s.fields[fieldCardType] = components.NewSelector("Card type",
		[]string{string(deck.Word), string(deck.Sentence)}, string(d.CardType()))
	s.fields[fieldCardType].Format = cardTypeLabel

	s.syncCascade()
	return s
}

func (s *FiltersScreen) Init() tea.Cmd {
	return nil
}

func (s *FiltersScreen) Title() string {
	return "Filters 篩選"
}

func (s *FiltersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case worksheetWrittenMsg:
		if msg.err != nil {
			s.log.Error("write worksheet", "path", msg.path, "error", msg.err)
			s.status = "Could not write worksheet: " + msg.err.Error()
		} else {
			s.log.Info("worksheet written", "path", msg.path)
			s.status = "Worksheet written to " + msg.path
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveFocus(-1)
			return s, nil
		case "down", "j", "tab":
			s.moveFocus(1)
			return s, nil
		case "w":
			return s, s.writeWorksheet()
		}

		var changed bool
		s.fields[s.focus], changed = s.fields[s.focus].Update(msg)
		if changed {
			s.apply(s.focus)
		}
	}
	return s, nil
}

// apply pushes the focused field's value into the deck.
func (s *FiltersScreen) apply(field int) {
	value := s.fields[field].Value()
	switch field {
	case fieldLevel:
		s.deck.SetLevel(value)
	case fieldBook:
		s.deck.SetBook(value)
	case fieldLesson:
		s.deck.SetLesson(value)
	case fieldMode:
		s.deck.SetMode(study.Mode(value))
	case fieldCardType:
		s.deck.SetCardType(deck.CardType(value))
	}
	s.status = ""
	s.syncCascade()
	s.log.Debug("selection changed", "selection", s.deck.Filter().Selection())
}

// syncCascade refreshes the option lists and disabled state from the engine.
func (s *FiltersScreen) syncCascade() {
	eng := s.deck.Filter()
	sel := eng.Selection()

	s.fields[fieldLevel].SetOptions(withAll(eng.LevelOptions()), sel.Level)
	s.fields[fieldBook].SetOptions(withAll(eng.BookOptions()), sel.Book)
	s.fields[fieldBook].Disabled = !eng.BookEnabled()
	s.fields[fieldLesson].SetOptions(withAll(eng.LessonOptions()), sel.Lesson)
	s.fields[fieldLesson].Disabled = !eng.LessonEnabled()

	if s.fields[s.focus].Disabled {
		s.focus = fieldLevel
	}
}

func (s *FiltersScreen) moveFocus(delta int) {
	for i := s.focus + delta; i >= 0 && i < fieldCount; i += delta {
		if !s.fields[i].Disabled {
			s.focus = i
			return
		}
	}
}

func (s *FiltersScreen) writeWorksheet() tea.Cmd {
	path := s.worksheetPath
	sel := s.deck.Filter().Selection()
	entries := s.deck.Filtered()
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return worksheetWrittenMsg{path: path, err: err}
		}
		err = worksheet.Render(f, sel.Lesson, entries)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return worksheetWrittenMsg{path: path, err: err}
	}
}

func (s *FiltersScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var rows []string
	for i := range s.fields {
		rows = append(rows, s.fields[i].View(i == s.focus))
	}
	form := components.CardBox(lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(rows, "\n\n")), cw, false)

	summary := theme.Body.Render(s.deck.Filter().Summary())
	_, total := s.deck.Session().Position()
	count := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%d cards", total))

	sections := []string{form, summary + "  " + count}
	if s.status != "" {
		sections = append(sections, theme.Hint.Render(s.status))
	}
	return components.CenterFrame(strings.Join(sections, "\n\n"), width, height)
}

// KeyHints implements screen.KeyHintProvider.
func (s *FiltersScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "w", Description: "Worksheet"},
	}
}

func withAll(options []string) []string {
	return append([]string{filter.All}, options...)
}

func levelLabel(v string) string {
	if v == filter.All {
		return "All Levels 所有程度"
	}
	return "Level " + v
}

func bookLabel(v string) string {
	if v == filter.All {
		return "All Books 所有冊別"
	}
	return "Book " + v
}

func lessonLabel(v string) string {
	if v == filter.All {
		return "All Lessons 所有課程"
	}
	return lesson.FormatLabel(v)
}

func modeLabel(v string) string {
	if study.Mode(v) == study.Random {
		return "Random 隨機"
	}
	return "Sequential 順序"
}

func cardTypeLabel(v string) string {
	if deck.CardType(v) == deck.Sentence {
		return "Sentences 句子"
	}
	return "Words 生詞"
}
