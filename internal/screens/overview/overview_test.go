package overview

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hanzi/internal/deck"
	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/sentencegen"
	"github.com/abhisek/hanzi/internal/study"
	"github.com/abhisek/hanzi/internal/vocab"
)

var testEntries = []vocab.Entry{
	{Characters: "吃", Pinyin: "chī", English: "eat", Lesson: "L10", Book: "A", Level: "1"},
	{Characters: "我", Pinyin: "wǒ", English: "I", Lesson: "L2", Book: "A", Level: "1"},
	{Characters: "好", Pinyin: "hǎo", English: "good", Lesson: "L2", Book: "A", Level: "1"},
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "study" }
func (stubScreen) Title() string                             { return "study" }

func newTestDeck(t *testing.T, ct deck.CardType) *deck.Deck {
	t.Helper()
	gen := sentencegen.New(sentencegen.DefaultConfig(), sentencegen.DefaultRoles(), rand.New(rand.NewPCG(1, 2)), nil)
	sess := study.New(study.WithRand(rand.New(rand.NewPCG(3, 4))))
	return deck.New(testEntries, gen, sess, ct, nil)
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestRowsSortedByLessonThenPinyin(t *testing.T) {
	o := New(newTestDeck(t, deck.Word), nil)
	var got []string
	for range testEntries {
		e, _ := o.Selected()
		got = append(got, e.Characters)
		o.Update(specialKey(tea.KeyDown))
	}
	want := []string{"好", "我", "吃"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row order = %v, want %v", got, want)
		}
	}
}

func TestCursorClamps(t *testing.T) {
	o := New(newTestDeck(t, deck.Word), nil)
	o.Update(specialKey(tea.KeyUp))
	if o.cursor != 0 {
		t.Errorf("cursor = %d, want 0", o.cursor)
	}
	for range 10 {
		o.Update(specialKey(tea.KeyDown))
	}
	if o.cursor != len(testEntries)-1 {
		t.Errorf("cursor = %d, want %d", o.cursor, len(testEntries)-1)
	}
}

func TestEnterSelectsCardAndOpensStudy(t *testing.T) {
	d := newTestDeck(t, deck.Word)
	o := New(d, func() screen.Screen { return stubScreen{} })

	// Third row is 吃, filtered index 0.
	o.Update(specialKey(tea.KeyDown))
	o.Update(specialKey(tea.KeyDown))
	_, cmd := o.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a screen change")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if got := d.Session().CurrentCardIndex(); got != 0 {
		t.Errorf("current card = %d, want 0", got)
	}

	o.Update(specialKey(tea.KeyUp))
	o.Update(specialKey(tea.KeyEnter))
	if got := d.Session().CurrentCardIndex(); got != 1 {
		t.Errorf("current card = %d, want 1", got)
	}
}

func TestEnterIgnoredForSentences(t *testing.T) {
	d := newTestDeck(t, deck.Sentence)
	o := New(d, func() screen.Screen { return stubScreen{} })
	before, _ := d.Session().Position()
	if _, cmd := o.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("expected no command for sentence decks")
	}
	if after, _ := d.Session().Position(); after != before {
		t.Error("expected session position unchanged")
	}
}

func TestViewScrollsWithCursor(t *testing.T) {
	o := New(newTestDeck(t, deck.Word), nil)
	o.Update(specialKey(tea.KeyDown))
	o.Update(specialKey(tea.KeyDown))

	out := o.View(100, 5) // one visible row
	if !strings.Contains(out, "吃") {
		t.Errorf("expected cursor row visible, got %q", out)
	}
	if strings.Contains(out, "好") {
		t.Errorf("expected first row scrolled away, got %q", out)
	}
}

func TestEmptyOverview(t *testing.T) {
	d := newTestDeck(t, deck.Word)
	d.SetLevel("9")
	o := New(d, nil)
	if _, cmd := o.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("expected no command on empty table")
	}
	if !strings.Contains(o.View(100, 30), "No vocabulary") {
		t.Error("expected empty message")
	}
}
