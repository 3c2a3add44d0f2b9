// Package home is the main menu.
package home

import (
	"context"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/deck"
	"github.com/abhisek/hanzi/internal/router"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/screens/filters"
	"github.com/abhisek/hanzi/internal/screens/flashcard"
	"github.com/abhisek/hanzi/internal/screens/overview"
	"github.com/abhisek/hanzi/internal/store"
	"github.com/abhisek/hanzi/internal/ui/components"
	"github.com/abhisek/hanzi/internal/ui/theme"
)

// KidModeMsg reports a kid mode change. Err is set when the preference
// could not be saved; the new value still applies for this run.
type KidModeMsg struct {
	On  bool
	Err error
}

// Options carries what the home screen and the screens it opens need.
type Options struct {
	Deck          *deck.Deck
	Prefs         store.PreferenceRepo
	KidMode       bool
	WorksheetPath string
	Logger        *slog.Logger
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	opts Options
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	h := &HomeScreen{opts: opts}
	h.menu = components.NewMenu(h.items())
	return h
}

// KidMode reports the current kid mode state.
func (h *HomeScreen) KidMode() bool {
	return h.opts.KidMode
}

// items builds the menu. Filters and the overview are hidden behind kid mode.
func (h *HomeScreen) items() []components.MenuItem {
	kid := h.opts.KidMode
	kidLabel := "Kid Mode: OFF"
	if kid {
		kidLabel = "Kid Mode: ON"
	}
	return []components.MenuItem{
		{Label: "Study 學習", Action: func() tea.Cmd {
			return push(h.newStudy())
		}},
		{Label: "Filters 篩選", Disabled: kid, Action: func() tea.Cmd {
			return push(filters.New(h.opts.Deck, h.opts.WorksheetPath, h.opts.Logger))
		}},
		{Label: "Vocabulary Overview 生詞總覽", Disabled: kid, Action: func() tea.Cmd {
			return push(overview.New(h.opts.Deck, h.newStudy))
		}},
		{Label: kidLabel, Action: h.toggleKidMode},
		{Label: "Exit 離開", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) newStudy() screen.Screen {
	return flashcard.New(h.opts.Deck, h.opts.KidMode, h.opts.Logger)
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// toggleKidMode flips the flag and persists it off the update loop.
func (h *HomeScreen) toggleKidMode() tea.Cmd {
	next := !h.opts.KidMode
	prefs := h.opts.Prefs
	return func() tea.Msg {
		if prefs == nil {
			return KidModeMsg{On: next}
		}
		return KidModeMsg{On: next, Err: prefs.SetKidMode(context.Background(), next)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(KidModeMsg); ok {
		if msg.Err != nil {
			h.opts.Logger.Error("save kid mode", "error", msg.Err)
		}
		h.opts.KidMode = msg.On
		h.menu.SetItems(h.items())
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := theme.Title.Width(cw).Render("傳統中文學習 Traditional Chinese Learning")
	subtitle := theme.Subtitle.Width(cw).Render("索引：生詞／短語 - Index: Vocabulary Words / Phrases")

	sections := []string{title, subtitle}

	d := h.opts.Deck
	summary := d.Filter().Summary()
	_, total := d.Session().Position()
	if total == 0 {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Width(cw).Align(lipgloss.Center).
			Render(flashcard.NoCardsMessage))
	} else {
		sections = append(sections, theme.Subtitle.Width(cw).Render(summary))
	}

	if st := d.Session().Stats(); h.opts.KidMode && st.Total > 0 {
		bar := components.NewProgressBar("Study Progress", st.Percent(), true, cw)
		sections = append(sections, bar.View())
	}

	sections = append(sections, components.CardBox(
		lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.TrimRight(h.menu.View(), "\n")), cw, false))

	if !h.opts.KidMode {
		sections = append(sections, theme.Hint.Width(cw).Render(instructions))
	}

	return components.CenterFrame(strings.Join(sections, "\n\n"), width, height)
}

const instructions = `使用說明 How to Use
• Space reveals pinyin and English, 1/2 marks the answer
• ←/→ move between cards, s shuffles, r resets progress
• Filters choose the level, book, lesson and card type
• w on the filters screen writes a practice worksheet`

func (h *HomeScreen) Title() string {
	return "Home"
}
