package app

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hanzi/internal/deck"
	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screens/home"
	"github.com/abhisek/hanzi/internal/screens/welcome"
	"github.com/abhisek/hanzi/internal/sentencegen"
	"github.com/abhisek/hanzi/internal/study"
	"github.com/abhisek/hanzi/internal/vocab"
)

func newTestModel(t *testing.T, skipSplash bool) AppModel {
	t.Helper()
	entries := []vocab.Entry{
		{Characters: "我", Pinyin: "wǒ", English: "I", Lesson: "L1", Book: "A", Level: "1"},
		{Characters: "你", Pinyin: "nǐ", English: "you", Lesson: "L1", Book: "A", Level: "1"},
	}
	gen := sentencegen.New(sentencegen.DefaultConfig(), sentencegen.DefaultRoles(), rand.New(rand.NewPCG(1, 2)), nil)
	d := deck.New(entries, gen, study.New(), deck.Word, nil)
	return newAppModel(Options{Deck: d, KidMode: true, SkipSplash: skipSplash})
}

func step(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestStartsOnSplash(t *testing.T) {
	m := newTestModel(t, false)
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected welcome screen, got %T", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("expected splash tick from Init")
	}
}

func TestSkipSplash(t *testing.T) {
	m := newTestModel(t, true)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("expected home screen, got %T", m.router.Active())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t, true)
	_, cmd := step(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestEscPopsOnlyAboveRoot(t *testing.T) {
	m := newTestModel(t, true)
	if _, cmd := step(m, tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("expected esc at root to do nothing")
	}

	// Study is the first menu item.
	m, cmd := step(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = step(m, cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("expected study screen pushed, depth %d", m.router.Depth())
	}

	_, cmd = step(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestKidModeMsgUpdatesHeader(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = step(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(m.render(), "Kid Mode on") {
		t.Error("expected kid mode on in header")
	}

	m, _ = step(m, home.KidModeMsg{On: false})
	if m.kidMode {
		t.Error("expected kid mode off")
	}
	if !strings.Contains(m.render(), "Kid Mode off") {
		t.Error("expected kid mode off in header")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = step(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestFooterUsesScreenHints(t *testing.T) {
	m := newTestModel(t, true)
	m, cmd := step(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = step(m, cmd())

	hints := m.footerHints(m.router.Active())
	var descs []string
	for _, h := range hints {
		descs = append(descs, h.Description)
	}
	joined := strings.Join(descs, ",")
	if !strings.Contains(joined, "Reveal") || !strings.Contains(joined, "Back") {
		t.Errorf("unexpected hints %v", descs)
	}
}
