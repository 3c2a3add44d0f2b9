// Package study tracks the order, position and score of a flashcard run.
package study

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/hanzi/internal/sentencegen"
)

// Mode controls how the card order is built on re-key.
type Mode string

const (
	Sequential Mode = "sequential"
	Random     Mode = "random"
)

// DefaultAdvanceDelay is how long feedback stays visible after marking an
// answer before the next card is shown.
const DefaultAdvanceDelay = 500 * time.Millisecond

// ResetPrompt is the question shown before stats are cleared.
const ResetPrompt = "Reset your progress? 確認重設進度？"

// Stats counts answered cards. Correct never exceeds Total.
type Stats struct {
	Correct int
	Total   int
}

// Percent returns the rounded share of correct answers, or 0 before any
// answer is recorded.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Correct*200 + s.Total) / (s.Total * 2)
}

// Confirmer gates destructive actions behind a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

var (
	// Confirmed accepts every prompt.
	Confirmed Confirmer = ConfirmFunc(func(string) bool { return true })
	// Declined rejects every prompt.
	Declined Confirmer = ConfirmFunc(func(string) bool { return false })
)

// Pending is a scheduled advance returned by MarkAnswer. The host delivers
// it back to Advance after Delay.
type Pending struct {
	Generation uint64
	Delay      time.Duration
}

// Session is the state machine behind the flashcard screen. It is owned by
// a single goroutine.
type Session struct {
	id    string
	cards []sentencegen.Card
	order []int
	index int
	show  bool
	stats Stats
	mode  Mode

	generation uint64
	delay      time.Duration

	rng *rand.Rand
	log *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithAdvanceDelay overrides DefaultAdvanceDelay.
func WithAdvanceDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// WithLogger sets the logger for session events.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithMode sets the initial ordering mode.
func WithMode(m Mode) Option {
	return func(s *Session) { s.mode = m }
}

// New creates an empty session. Call Rekey to load cards.
func New(opts ...Option) *Session {
	s := &Session{
		id:    uuid.New().String(),
		mode:  Sequential,
		delay: DefaultAdvanceDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	s.log = s.log.With("session_id", s.id)
	return s
}

// ID identifies this session in logs.
func (s *Session) ID() string { return s.id }

// Mode returns the current ordering mode.
func (s *Session) Mode() Mode { return s.mode }

// Rekey loads a new active card list. The order is rebuilt for the current
// mode, the position returns to the first card and any pending advance is
// invalidated. Stats are kept.
func (s *Session) Rekey(cards []sentencegen.Card) {
	s.cards = cards
	s.order = make([]int, len(cards))
	for i := range s.order {
		s.order[i] = i
	}
	if s.mode == Random {
		s.shuffleOrder()
	}
	s.index = 0
	s.show = false
	s.generation++
	s.log.Debug("session rekeyed", "cards", len(cards), "mode", string(s.mode))
}

// SetMode changes the ordering mode and re-keys the current cards.
func (s *Session) SetMode(m Mode) {
	s.mode = m
	s.Rekey(s.cards)
}

// HasCards reports whether there is anything to study.
func (s *Session) HasCards() bool {
	return len(s.cards) > 0 && len(s.order) > 0
}

// Current returns the card at the current position.
func (s *Session) Current() (sentencegen.Card, bool) {
	if !s.HasCards() {
		return sentencegen.Card{}, false
	}
	return s.cards[s.order[s.index]], true
}

// CurrentCardIndex returns the index into the active card list of the
// current card, or -1 when there are no cards.
func (s *Session) CurrentCardIndex() int {
	if !s.HasCards() {
		return -1
	}
	return s.order[s.index]
}

// Position returns the zero-based position within the order and the total.
func (s *Session) Position() (int, int) { return s.index, len(s.order) }

// ShowAnswer reports whether the answer side is visible.
func (s *Session) ShowAnswer() bool { return s.show }

// Stats returns the answer counts.
func (s *Session) Stats() Stats { return s.stats }

// Order returns a copy of the presentation order.
func (s *Session) Order() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// Next moves to the following card, wrapping at the end.
func (s *Session) Next() {
	if !s.HasCards() {
		return
	}
	s.index = (s.index + 1) % len(s.order)
	s.show = false
}

// Prev moves to the previous card, wrapping at the start.
func (s *Session) Prev() {
	if !s.HasCards() {
		return
	}
	s.index = (s.index - 1 + len(s.order)) % len(s.order)
	s.show = false
}

// Shuffle re-randomizes the order and returns to the first card.
func (s *Session) Shuffle() {
	if !s.HasCards() {
		return
	}
	s.shuffleOrder()
	s.index = 0
	s.show = false
}

// ToggleAnswer flips answer visibility.
func (s *Session) ToggleAnswer() { s.show = !s.show }

// Reveal shows the answer side.
func (s *Session) Reveal() { s.show = true }

// Select jumps to the position holding card cardIdx of the active list.
// Unknown indexes are ignored.
func (s *Session) Select(cardIdx int) {
	for pos, i := range s.order {
		if i == cardIdx {
			s.index = pos
			s.show = false
			return
		}
	}
}

// Reset clears stats and returns to the first card when confirm accepts.
// The order is kept. It reports whether the reset happened.
func (s *Session) Reset(confirm Confirmer) bool {
	if confirm == nil || !confirm.Confirm(ResetPrompt) {
		return false
	}
	s.index = 0
	s.show = false
	s.stats = Stats{}
	s.log.Debug("session reset")
	return true
}

// MarkAnswer records an answer for the current card and returns the advance
// the host should schedule. The answer stays visible until Advance runs.
func (s *Session) MarkAnswer(correct bool) (Pending, bool) {
	if !s.HasCards() {
		return Pending{}, false
	}
	s.stats.Total++
	if correct {
		s.stats.Correct++
	}
	return Pending{Generation: s.generation, Delay: s.delay}, true
}

// Advance performs a scheduled advance. Tokens issued before the latest
// Rekey are dropped. The modulus is taken from the order at call time.
func (s *Session) Advance(p Pending) bool {
	if p.Generation != s.generation || !s.HasCards() {
		return false
	}
	s.index = (s.index + 1) % len(s.order)
	s.show = false
	return true
}

// shuffleOrder permutes the order in place with Fisher–Yates.
func (s *Session) shuffleOrder() {
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
}
