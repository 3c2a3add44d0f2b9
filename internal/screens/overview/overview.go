// Package overview lists the filtered vocabulary in lesson order and lets
// the learner jump straight to a card.
package overview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/hanzi/internal/deck"
	"github.com/abhisek/hanzi/internal/filter"
	"github.com/abhisek/hanzi/internal/lesson"
	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/ui/layout"
	"github.com/abhisek/hanzi/internal/ui/theme"
	"github.com/abhisek/hanzi/internal/vocab"
)

// OverviewScreen is a scrollable vocabulary table.
type OverviewScreen struct {
	deck    *deck.Deck
	open    func() screen.Screen
	entries []vocab.Entry
	// rows maps a table row to its index in entries.
	rows   []int
	cursor int
	offset int
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

// New creates the overview over the deck's current selection. open builds
// the study screen shown after a card is picked; it may be nil.
func New(d *deck.Deck, open func() screen.Screen) *OverviewScreen {
	entries := d.Filtered()
	return &OverviewScreen{
		deck:    d,
		open:    open,
		entries: entries,
		rows:    lesson.SortIndices(entries),
	}
}

func (o *OverviewScreen) Init() tea.Cmd {
	return nil
}

func (o *OverviewScreen) Title() string {
	return "Vocabulary Overview 生詞總覽"
}

func (o *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(o.rows) == 0 {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.cursor > 0 {
			o.cursor--
		}
	case "down", "j":
		if o.cursor < len(o.rows)-1 {
			o.cursor++
		}
	case "home", "g":
		o.cursor = 0
	case "end", "G":
		o.cursor = len(o.rows) - 1
	case "enter":
		return o, o.selectRow()
	}
	return o, nil
}

// Selected returns the entry under the cursor.
func (o *OverviewScreen) Selected() (vocab.Entry, bool) {
	if len(o.rows) == 0 {
		return vocab.Entry{}, false
	}
	return o.entries[o.rows[o.cursor]], true
}

// selectRow jumps the session to the card under the cursor. Sentence decks
// are not indexed by vocabulary, so the jump only applies to word cards.
func (o *OverviewScreen) selectRow() tea.Cmd {
	if o.deck.CardType() != deck.Word {
		return nil
	}
	o.deck.Session().Select(o.rows[o.cursor])
	if o.open == nil {
		return nil
	}
	next := o.open()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (o *OverviewScreen) View(width, height int) string {
	sel := o.deck.Filter().Selection()
	heading := "All Lessons 所有課程"
	if sel.Lesson != filter.All {
		heading = lesson.FormatLabel(sel.Lesson)
	}
	title := theme.Title.Render(fmt.Sprintf("%s (%d)", heading, len(o.rows)))

	if len(o.rows) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(title + "\n\n" + theme.Hint.Render("No vocabulary matches the current filters."))
	}

	// title, blank line, column header
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	o.scrollTo(visible)

	current := -1
	if o.deck.CardType() == deck.Word {
		current = o.deck.Session().CurrentCardIndex()
	}

	lines := []string{title, "", theme.Hint.Render(formatRow("", "字", "Pinyin", "English", "Lesson"))}
	end := min(o.offset+visible, len(o.rows))
	for i := o.offset; i < end; i++ {
		idx := o.rows[i]
		e := o.entries[idx]
		marker := " "
		if idx == current {
			marker = "•"
		}
		row := formatRow(marker, e.Characters, e.Pinyin, e.English, e.Lesson)
		switch {
		case i == o.cursor:
			lines = append(lines, theme.Selected.Render("▸"+row))
		default:
			lines = append(lines, theme.Unselected.Render(" "+row))
		}
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(lines, "\n"))
}

// scrollTo keeps the cursor inside a window of the given height.
func (o *OverviewScreen) scrollTo(visible int) {
	if o.cursor < o.offset {
		o.offset = o.cursor
	}
	if o.cursor >= o.offset+visible {
		o.offset = o.cursor - visible + 1
	}
}

func formatRow(marker, chars, pinyin, english, lessonLabel string) string {
	return marker + " " +
		runewidth.FillRight(runewidth.Truncate(chars, 12, "…"), 12) + "  " +
		runewidth.FillRight(runewidth.Truncate(pinyin, 18, "…"), 18) + "  " +
		runewidth.FillRight(runewidth.Truncate(english, 24, "…"), 24) + "  " +
		lessonLabel
}

// KeyHints implements screen.KeyHintProvider.
func (o *OverviewScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}
	if o.deck.CardType() == deck.Word {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Study this card"})
	}
	return hints
}
