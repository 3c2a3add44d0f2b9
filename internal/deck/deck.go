// Package deck connects the filter engine, the sentence generator and the
// study session so that every selection change re-keys the session.
package deck

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/hanzi/internal/filter"
	"github.com/abhisek/hanzi/internal/sentencegen"
	"github.com/abhisek/hanzi/internal/study"
	"github.com/abhisek/hanzi/internal/vocab"
)

// CardType selects what the session studies.
type CardType string

const (
	Word     CardType = "word"
	Sentence CardType = "sentence"
)

// ParseCardType converts a config or flag value into a CardType.
func ParseCardType(s string) (CardType, error) {
	switch CardType(s) {
	case Word, Sentence:
		return CardType(s), nil
	}
	return "", fmt.Errorf("unknown card type %q", s)
}

// ParseMode converts a config or flag value into a study mode.
func ParseMode(s string) (study.Mode, error) {
	switch study.Mode(s) {
	case study.Sequential, study.Random:
		return study.Mode(s), nil
	}
	return "", fmt.Errorf("unknown study mode %q", s)
}

// Deck is the single owner of the filter, generator and session state.
type Deck struct {
	engine   *filter.Engine
	gen      *sentencegen.Generator
	session  *study.Session
	cardType CardType
	log      *slog.Logger

	sentenceKey string
	sentences   []sentencegen.Card
	hasCache    bool
}

// New builds a deck over entries and loads the initial card list.
func New(entries []vocab.Entry, gen *sentencegen.Generator, session *study.Session, cardType CardType, log *slog.Logger) *Deck {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	d := &Deck{
		engine:   filter.New(entries),
		gen:      gen,
		session:  session,
		cardType: cardType,
		log:      log,
	}
	d.rekey()
	return d
}

// Filter exposes the engine for read-only derivations.
func (d *Deck) Filter() *filter.Engine { return d.engine }

// Session exposes the study session for navigation and scoring.
func (d *Deck) Session() *study.Session { return d.session }

// CardType returns the active card type.
func (d *Deck) CardType() CardType { return d.cardType }

// SetLevel selects a level and re-keys.
func (d *Deck) SetLevel(level string) {
	d.engine.SetLevel(level)
	d.rekey()
}

// SetBook selects a book and re-keys.
func (d *Deck) SetBook(book string) {
	d.engine.SetBook(book)
	d.rekey()
}

// SetLesson selects a lesson and re-keys.
func (d *Deck) SetLesson(l string) {
	d.engine.SetLesson(l)
	d.rekey()
}

// SetCardType switches between word and sentence cards and re-keys.
func (d *Deck) SetCardType(t CardType) {
	d.cardType = t
	d.rekey()
}

// SetMode switches between sequential and random order.
func (d *Deck) SetMode(m study.Mode) {
	d.session.SetMode(m)
}

// Filtered returns the entries matching the current selection.
func (d *Deck) Filtered() []vocab.Entry { return d.engine.Filtered() }

// ActiveCards returns the list the session is studying.
func (d *Deck) ActiveCards() []sentencegen.Card {
	if d.cardType == Sentence {
		return d.sentenceCards()
	}
	filtered := d.engine.Filtered()
	cards := make([]sentencegen.Card, len(filtered))
	for i, e := range filtered {
		cards[i] = sentencegen.FromEntry(e)
	}
	return cards
}

// CurrentDetails returns the full vocabulary entry behind the current card.
// It only applies to word cards.
func (d *Deck) CurrentDetails() (vocab.Entry, bool) {
	if d.cardType != Word {
		return vocab.Entry{}, false
	}
	idx := d.session.CurrentCardIndex()
	filtered := d.engine.Filtered()
	if idx < 0 || idx >= len(filtered) {
		return vocab.Entry{}, false
	}
	return filtered[idx], true
}

// Regenerate draws a fresh batch of sentences for the current selection.
func (d *Deck) Regenerate() {
	d.hasCache = false
	if d.cardType == Sentence {
		d.rekey()
	}
}

// sentenceCards returns the sentences for the current selection, generating
// them only when the selection changed.
func (d *Deck) sentenceCards() []sentencegen.Card {
	key := d.engine.Selection().Key()
	if d.hasCache && key == d.sentenceKey {
		return d.sentences
	}
	pool := d.engine.AvailableUpToLesson()
	target := d.gen.Config().TargetCount(len(pool))
	d.sentences = d.gen.Generate(pool, target)
	d.sentenceKey = key
	d.hasCache = true
	d.log.Debug("sentences generated", "pool", len(pool), "target", target, "generated", len(d.sentences))
	return d.sentences
}

func (d *Deck) rekey() {
	d.session.Rekey(d.ActiveCards())
}
