// Package flashcard is the study screen: one card at a time, scored with
// the keyboard.
package flashcard

import (
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hanzi/internal/deck"
	"github.com/abhisek/hanzi/internal/screen"
	"github.com/abhisek/hanzi/internal/study"
	"github.com/abhisek/hanzi/internal/ui/layout"
)

// advanceMsg delivers a scheduled advance back to the session.
type advanceMsg struct {
	pending study.Pending
	ticket  int
}

// feedback is the result of the last marked answer, shown until the
// advance fires.
type feedback int

const (
	feedbackNone feedback = iota
	feedbackCorrect
	feedbackIncorrect
)

// FlashcardScreen shows the current card of the deck's session.
type FlashcardScreen struct {
	deck    *deck.Deck
	kidMode bool
	keys    keyMap
	log     *slog.Logger

	confirming bool
	awaiting   bool
	feedback   feedback

	// ticket is bumped on reset so an advance scheduled before it is ignored.
	ticket int
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

// New creates the study screen over d. Card details are only shown when
// kid mode is off.
func New(d *deck.Deck, kidMode bool, log *slog.Logger) *FlashcardScreen {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &FlashcardScreen{
		deck:    d,
		kidMode: kidMode,
		keys:    newKeyMap(),
		log:     log,
	}
	s.syncKeys()
	return s
}

func (s *FlashcardScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardScreen) Title() string {
	return "Study 學習"
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	defer s.syncKeys()

	switch msg := msg.(type) {
	case advanceMsg:
		if msg.ticket != s.ticket {
			return s, nil
		}
		s.awaiting = false
		s.feedback = feedbackNone
		if !s.deck.Session().Advance(msg.pending) {
			s.log.Debug("stale advance dropped", "generation", msg.pending.Generation)
		}
		return s, nil

	case tea.KeyMsg:
		if s.confirming {
			return s, s.handleConfirm(msg)
		}
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *FlashcardScreen) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	// Any key other than y declines.
	yes := key.Matches(msg, s.keys.Yes)
	s.confirming = false
	sess := s.deck.Session()
	if sess.Reset(study.ConfirmFunc(func(string) bool { return yes })) {
		s.awaiting = false
		s.feedback = feedbackNone
		s.ticket++
		s.log.Info("progress reset", "session_id", sess.ID())
	}
	return nil
}

func (s *FlashcardScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	sess := s.deck.Session()

	switch {
	case key.Matches(msg, s.keys.Reset):
		s.confirming = true
		return nil
	case key.Matches(msg, s.keys.Regenerate):
		s.deck.Regenerate()
		s.awaiting = false
		s.feedback = feedbackNone
		return nil
	}

	if !sess.HasCards() {
		return nil
	}

	switch {
	case key.Matches(msg, s.keys.Reveal):
		if !sess.ShowAnswer() {
			sess.Reveal()
			return nil
		}
		return s.mark(true)
	case key.Matches(msg, s.keys.Prev):
		sess.Prev()
	case key.Matches(msg, s.keys.Next):
		sess.Next()
	case key.Matches(msg, s.keys.Incorrect):
		return s.mark(false)
	case key.Matches(msg, s.keys.Correct):
		return s.mark(true)
	case key.Matches(msg, s.keys.Shuffle):
		sess.Shuffle()
	}
	return nil
}

// mark scores the current card once and schedules the advance.
func (s *FlashcardScreen) mark(correct bool) tea.Cmd {
	if s.awaiting || !s.deck.Session().ShowAnswer() {
		return nil
	}
	p, ok := s.deck.Session().MarkAnswer(correct)
	if !ok {
		return nil
	}
	s.awaiting = true
	s.feedback = feedbackIncorrect
	if correct {
		s.feedback = feedbackCorrect
	}
	ticket := s.ticket
	return tea.Tick(p.Delay, func(time.Time) tea.Msg {
		return advanceMsg{pending: p, ticket: ticket}
	})
}

// syncKeys enables the bindings that apply to the current state.
func (s *FlashcardScreen) syncKeys() {
	sess := s.deck.Session()
	show := sess.ShowAnswer()
	hasCards := sess.HasCards()

	k := &s.keys
	k.Yes.SetEnabled(s.confirming)
	k.No.SetEnabled(s.confirming)
	k.Reset.SetEnabled(!s.confirming)
	k.Regenerate.SetEnabled(!s.confirming && s.deck.CardType() == deck.Sentence)

	k.Reveal.SetEnabled(!s.confirming && hasCards)
	k.Prev.SetEnabled(!s.confirming && hasCards)
	k.Shuffle.SetEnabled(!s.confirming && hasCards)
	k.Next.SetEnabled(!s.confirming && hasCards && !show)
	k.Incorrect.SetEnabled(!s.confirming && hasCards && show && !s.awaiting)
	k.Correct.SetEnabled(!s.confirming && hasCards && show && !s.awaiting)

	if show {
		k.Reveal.SetHelp("Enter", "Got it")
	} else {
		k.Reveal.SetHelp("Space", "Reveal")
	}
}

// KeyHints implements screen.KeyHintProvider.
func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	k := s.keys
	if s.confirming {
		return hints(k.Yes, k.No)
	}
	return hints(k.Reveal, k.Prev, k.Next, k.Incorrect, k.Correct, k.Shuffle, k.Reset, k.Regenerate)
}
