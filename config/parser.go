package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseError reports a file that could not be read or decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse config: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse config: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// Load reads, validates and converts the YAML file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, &ParseError{Path: path, Err: err}
	}

	s, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return Settings{}, pe
		}
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML document on top of the defaults. Unknown keys are
// rejected; an empty document yields the defaults.
func Parse(data []byte) (Settings, error) {
	f := fileFromConfig(Default().Grid)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, &ParseError{Path: "<input>", Line: extractLine(err), Err: err}
	}

	if err := Validate(&f); err != nil {
		return Settings{}, err
	}

	cfg, err := f.toConfig()
	if err != nil {
		return Settings{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return Settings{Grid: cfg, Source: f.Source}, nil
}

// Marshal renders s as a complete YAML document, every default spelled out.
func Marshal(s Settings) ([]byte, error) {
	f := fileFromConfig(s.Grid)
	f.Source = s.Source
	return yaml.Marshal(&f)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
