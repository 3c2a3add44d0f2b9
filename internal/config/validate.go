package config

import (
	"fmt"
	"strings"
)

// Validate checks values that tags alone cannot express.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}
	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json (got %q)", l.Format)
	}
	return nil
}

func (s *StudyConfig) validate() error {
	switch s.Mode {
	case "sequential", "random":
	default:
		return fmt.Errorf("mode must be sequential or random (got %q)", s.Mode)
	}
	switch s.CardType {
	case "word", "sentence":
	default:
		return fmt.Errorf("card_type must be word or sentence (got %q)", s.CardType)
	}
	if s.AutoAdvance < 0 {
		return fmt.Errorf("auto_advance must be >= 0 (got %v)", s.AutoAdvance)
	}
	return nil
}

func (g *GeneratorConfig) validate() error {
	if g.RetryFactor <= 0 {
		return fmt.Errorf("retry_factor must be > 0 (got %d)", g.RetryFactor)
	}
	if g.MinTarget <= 0 {
		return fmt.Errorf("min_target must be > 0 (got %d)", g.MinTarget)
	}
	if g.MaxTarget < g.MinTarget {
		return fmt.Errorf("max_target must be >= min_target (got %d < %d)", g.MaxTarget, g.MinTarget)
	}
	return nil
}
