package sentencegen

// Config holds the probabilities and bounds used by the generator.
type Config struct {
	// AdverbChance is the chance the transitive template inserts an adverb.
	AdverbChance float64
	// QuestionChance is the chance the transitive template ends as a question.
	QuestionChance float64
	// TimeWordChance is the chance the locative template leads with a time word.
	TimeWordChance float64

	// RetryFactor bounds the attempts to RetryFactor × target.
	RetryFactor int

	MinTarget   int
	MaxTarget   int
	TargetRatio float64
}

// DefaultConfig returns the standard generator configuration.
func DefaultConfig() Config {
	return Config{
		AdverbChance:   0.4,
		QuestionChance: 0.25,
		TimeWordChance: 0.5,
		RetryFactor:    10,
		MinTarget:      12,
		MaxTarget:      48,
		TargetRatio:    0.6,
	}
}

// TargetCount returns how many sentences to request for a pool of the given
// size: TargetRatio of the pool, clamped to [MinTarget, MaxTarget].
func (c Config) TargetCount(poolSize int) int {
	n := int(float64(poolSize) * c.TargetRatio)
	return min(c.MaxTarget, max(c.MinTarget, n))
}
