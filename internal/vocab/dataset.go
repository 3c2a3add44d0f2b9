package vocab

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed data/vocabulary.json
var defaultDataset []byte

//go:embed data/schema.json
var schemaDoc []byte

// ErrInvalidDataset is returned when a dataset does not match the schema.
var ErrInvalidDataset = errors.New("invalid vocabulary dataset")

const schemaURL = "schema://vocabulary.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal(schemaDoc, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

var embedded = sync.OnceValues(func() ([]Entry, error) {
	return Parse(defaultDataset, FormatJSON)
})

// Default returns the dataset compiled into the binary.
// The returned slice is a copy and may be modified by the caller.
func Default() ([]Entry, error) {
	entries, err := embedded()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Load reads a dataset from disk. The format is chosen by file extension:
// .yaml and .yml are decoded as YAML, everything else as JSON.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	entries, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return entries, nil
}

// FormatFromPath guesses the dataset format from a file name.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes and validates a dataset.
func Parse(data []byte, format Format) ([]Entry, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	var entries []Entry
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &entries)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}
