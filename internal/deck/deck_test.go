package deck

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hanzi/internal/sentencegen"
	"github.com/abhisek/hanzi/internal/study"
	"github.com/abhisek/hanzi/internal/vocab"
)

func newTestDeck(t *testing.T, ct CardType) *Deck {
	t.Helper()
	entries, err := vocab.Default()
	require.NoError(t, err)

	gen := sentencegen.New(sentencegen.DefaultConfig(), sentencegen.DefaultRoles(), rand.New(rand.NewPCG(1, 2)), nil)
	sess := study.New(study.WithRand(rand.New(rand.NewPCG(3, 4))))
	return New(entries, gen, sess, ct, nil)
}

func TestDeck_WordCardsFollowFilter(t *testing.T) {
	d := newTestDeck(t, Word)
	all := len(d.Filtered())
	require.Equal(t, all, len(d.ActiveCards()))

	d.SetLevel("K2")
	d.SetBook("A")
	d.SetLesson("L1")

	filtered := d.Filtered()
	require.NotEmpty(t, filtered)
	assert.Less(t, len(filtered), all)

	cards := d.ActiveCards()
	require.Len(t, cards, len(filtered))
	for i, e := range filtered {
		assert.Equal(t, sentencegen.FromEntry(e), cards[i])
	}
	_, total := d.Session().Position()
	assert.Equal(t, len(filtered), total)
}

func TestDeck_SelectionChangeRekeys(t *testing.T) {
	d := newTestDeck(t, Word)
	s := d.Session()
	s.Next()
	s.Next()
	s.Reveal()
	s.MarkAnswer(true)

	d.SetLevel("1")

	idx, _ := s.Position()
	assert.Equal(t, 0, idx)
	assert.False(t, s.ShowAnswer())
	assert.Equal(t, 1, s.Stats().Total, "stats survive filter changes")
}

func TestDeck_CurrentDetails(t *testing.T) {
	d := newTestDeck(t, Word)
	d.SetLevel("K2")
	d.Session().Next()

	got, ok := d.CurrentDetails()
	require.True(t, ok)
	card, _ := d.Session().Current()
	assert.Equal(t, card.Characters, got.Characters)
	assert.Equal(t, "K2", got.Level)

	d.SetCardType(Sentence)
	_, ok = d.CurrentDetails()
	assert.False(t, ok)
}

func TestDeck_SentenceCardsCachedPerSelection(t *testing.T) {
	d := newTestDeck(t, Sentence)
	first := d.ActiveCards()
	require.NotEmpty(t, first)

	d.SetCardType(Word)
	d.SetCardType(Sentence)
	assert.Equal(t, first, d.ActiveCards(), "toggling card type keeps the batch")

	d.SetMode(study.Random)
	assert.Equal(t, first, d.ActiveCards(), "changing mode keeps the batch")
}

func TestDeck_SentenceCardsRespectCutoff(t *testing.T) {
	d := newTestDeck(t, Sentence)
	d.SetLevel("K2")
	d.SetBook("A")
	d.SetLesson("L1")

	allowed := map[rune]bool{'。': true, '？': true}
	for _, e := range d.Filter().AvailableUpToLesson() {
		for _, r := range e.Characters {
			allowed[r] = true
		}
	}
	for _, c := range d.ActiveCards() {
		for _, r := range c.Characters {
			assert.True(t, allowed[r], "sentence %q uses %q beyond the lesson cutoff", c.Characters, string(r))
		}
	}
}

func TestDeck_Regenerate(t *testing.T) {
	d := newTestDeck(t, Sentence)
	d.Session().Next()
	d.Regenerate()
	idx, _ := d.Session().Position()
	assert.Equal(t, 0, idx)
}

func TestDeck_EmptySelection(t *testing.T) {
	d := newTestDeck(t, Word)
	d.SetLevel("does-not-exist")
	assert.Empty(t, d.ActiveCards())
	assert.False(t, d.Session().HasCards())
	_, ok := d.CurrentDetails()
	assert.False(t, ok)
}

func TestParseCardType(t *testing.T) {
	ct, err := ParseCardType("sentence")
	require.NoError(t, err)
	assert.Equal(t, Sentence, ct)

	_, err = ParseCardType("phrase")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("random")
	require.NoError(t, err)
	assert.Equal(t, study.Random, m)

	_, err = ParseMode("shuffled")
	assert.Error(t, err)
}
