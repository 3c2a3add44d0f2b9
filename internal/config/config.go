// Package config loads application settings from YAML and the environment.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Store     StoreConfig     `yaml:"store"`
	Vocab     VocabConfig     `yaml:"vocab"`
	Study     StudyConfig     `yaml:"study"`
	Generator GeneratorConfig `yaml:"generator"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"HANZI_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"HANZI_LOG_FORMAT" env-default:"text"`
	// File receives log output while the TUI owns the terminal.
	// Empty means the default state directory.
	File string `yaml:"file" env:"HANZI_LOG_FILE"`
}

// StoreConfig holds the preference database location.
type StoreConfig struct {
	// DBPath overrides the default database location when set.
	DBPath string `yaml:"db_path" env:"HANZI_DB"`
}

// VocabConfig selects the vocabulary dataset.
type VocabConfig struct {
	// Path to a JSON or YAML dataset. Empty uses the built-in list.
	Path string `yaml:"path" env:"HANZI_VOCAB"`
}

// StudyConfig holds the initial study session settings.
type StudyConfig struct {
	Mode        string        `yaml:"mode"         env:"HANZI_STUDY_MODE"    env-default:"sequential"`
	CardType    string        `yaml:"card_type"    env:"HANZI_CARD_TYPE"     env-default:"word"`
	AutoAdvance time.Duration `yaml:"auto_advance" env:"HANZI_AUTO_ADVANCE"  env-default:"500ms"`
}

// GeneratorConfig holds sentence generator bounds.
type GeneratorConfig struct {
	RetryFactor int `yaml:"retry_factor" env:"HANZI_GEN_RETRY_FACTOR" env-default:"10"`
	MinTarget   int `yaml:"min_target"   env:"HANZI_GEN_MIN_TARGET"   env-default:"12"`
	MaxTarget   int `yaml:"max_target"   env:"HANZI_GEN_MAX_TARGET"   env-default:"48"`
}
