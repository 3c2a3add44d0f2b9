// Package sentencegen builds short example sentences from a vocabulary
// subset using a handful of fixed grammatical templates.
package sentencegen

import (
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/hanzi/internal/vocab"
)

// Card is the study card shape shared by words and generated sentences.
type Card struct {
	Characters string
	Pinyin     string
	English    string
}

// FromEntry projects a vocabulary entry onto a card.
func FromEntry(e vocab.Entry) Card {
	return Card{Characters: e.Characters, Pinyin: e.Pinyin, English: e.English}
}

// Generator composes sentences. It is not safe for concurrent use because it
// owns its random source.
type Generator struct {
	cfg   Config
	roles Roles
	rng   *rand.Rand
	log   *slog.Logger
}

// New creates a generator. A nil rng is replaced by a randomly seeded one
// and a nil log discards output.
func New(cfg Config, roles Roles, rng *rand.Rand, log *slog.Logger) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{cfg: cfg, roles: roles, rng: rng, log: log}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.cfg }

// buckets holds the entries available for each role in one call.
type buckets struct {
	subjects    []vocab.Entry
	adverbs     []vocab.Entry
	verbs       []vocab.Entry
	verbObjects []vocab.Entry
	objects     []vocab.Entry
	adjectives  []vocab.Entry
	timeWords   []vocab.Entry
	places      []vocab.Entry

	locative    *vocab.Entry
	question    *vocab.Entry
	intensifier *vocab.Entry
}

func (g *Generator) bucket(subset []vocab.Entry) buckets {
	// Later duplicates replace earlier ones.
	byChars := make(map[string]vocab.Entry, len(subset))
	for _, e := range subset {
		byChars[e.Characters] = e
	}
	from := func(words []string) []vocab.Entry {
		var out []vocab.Entry
		for _, w := range words {
			if e, ok := byChars[w]; ok {
				out = append(out, e)
			}
		}
		return out
	}
	single := func(w string) *vocab.Entry {
		if e, ok := byChars[w]; ok {
			return &e
		}
		return nil
	}

	b := buckets{
		subjects:    from(g.roles.Subjects),
		adverbs:     from(g.roles.Adverbs),
		verbs:       from(g.roles.TransitiveVerbs),
		verbObjects: from(g.roles.VerbObjects),
		objects:     from(g.roles.Objects),
		adjectives:  from(g.roles.Adjectives),
		timeWords:   from(g.roles.TimeWords),
		places:      from(g.roles.Places),
		locative:    single(g.roles.Locative),
		question:    single(g.roles.Question),
	}
	for i := range b.adverbs {
		if b.adverbs[i].Characters == g.roles.Intensifier {
			b.intensifier = &b.adverbs[i]
			break
		}
	}
	return b
}

func (g *Generator) pick(entries []vocab.Entry) (vocab.Entry, bool) {
	if len(entries) == 0 {
		return vocab.Entry{}, false
	}
	return entries[g.rng.IntN(len(entries))], true
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

type template func(b *buckets) (Card, bool)

// Generate returns up to target distinct sentences built only from words in
// subset. It stops once target sentences exist or after RetryFactor × target
// attempts, so sparse subsets yield fewer sentences or none.
func (g *Generator) Generate(subset []vocab.Entry, target int) []Card {
	cards := []Card{}
	if len(subset) == 0 || target <= 0 {
		return cards
	}

	b := g.bucket(subset)
	templates := []template{g.transitive, g.stative, g.locative}
	seen := make(map[string]struct{}, target)
	budget := g.cfg.RetryFactor * target

	attempts := 0
	for len(cards) < target && attempts < budget {
		attempts++
		c, ok := templates[g.rng.IntN(len(templates))](&b)
		if !ok {
			continue
		}
		if _, dup := seen[c.Characters]; dup {
			continue
		}
		seen[c.Characters] = struct{}{}
		cards = append(cards, c)
	}

	if len(cards) < target {
		g.log.Debug("sentence budget exhausted",
			"pool", len(subset),
			"target", target,
			"generated", len(cards),
			"attempts", attempts)
	}
	return cards
}

// transitive: subject (+ adverb) + verb + object, optionally a question.
func (g *Generator) transitive(b *buckets) (Card, bool) {
	s, ok1 := g.pick(b.subjects)
	v, ok2 := g.pick(b.verbs)
	o, ok3 := g.pick(b.objects)
	if !ok1 || !ok2 || !ok3 {
		return Card{}, false
	}

	parts := []vocab.Entry{s}
	if g.chance(g.cfg.AdverbChance) {
		if adv, ok := g.pick(b.adverbs); ok {
			parts = append(parts, adv)
		}
	}
	parts = append(parts, v, o)

	if b.question != nil && g.chance(g.cfg.QuestionChance) {
		c := join(parts)
		c.Characters += b.question.Characters + "？"
		c.Pinyin += " " + b.question.Pinyin + " ?"
		c.English += " ?"
		return c, true
	}
	return period(join(parts)), true
}

// stative: subject + intensifier + adjective.
func (g *Generator) stative(b *buckets) (Card, bool) {
	s, ok1 := g.pick(b.subjects)
	adj, ok2 := g.pick(b.adjectives)
	if !ok1 || !ok2 || b.intensifier == nil {
		return Card{}, false
	}
	return period(join([]vocab.Entry{s, *b.intensifier, adj})), true
}

// locative: (time word) + subject + locative + place + verb-object.
func (g *Generator) locative(b *buckets) (Card, bool) {
	var parts []vocab.Entry
	if g.chance(g.cfg.TimeWordChance) {
		if t, ok := g.pick(b.timeWords); ok {
			parts = append(parts, t)
		}
	}
	s, ok1 := g.pick(b.subjects)
	place, ok2 := g.pick(b.places)
	vo, ok3 := g.pick(b.verbObjects)
	if !ok1 || !ok2 || !ok3 || b.locative == nil {
		return Card{}, false
	}
	parts = append(parts, s, *b.locative, place, vo)
	return period(join(parts)), true
}

func join(parts []vocab.Entry) Card {
	chars := make([]string, len(parts))
	pinyin := make([]string, len(parts))
	english := make([]string, len(parts))
	for i, p := range parts {
		chars[i] = p.Characters
		pinyin[i] = p.Pinyin
		english[i] = p.English
	}
	return Card{
		Characters: strings.Join(chars, ""),
		Pinyin:     strings.Join(pinyin, " "),
		English:    strings.Join(english, " "),
	}
}

func period(c Card) Card {
	c.Characters += "。"
	c.Pinyin += " ."
	c.English += " ."
	return c
}
