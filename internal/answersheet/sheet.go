// Package answersheet reads recorded answers from a file and replays them
// through the assessment engine.
package answersheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sheet is a set of answers keyed by question id.
type Sheet struct {
	// Name optionally identifies who or what the answers belong to.
	Name    string         `yaml:"name,omitempty" json:"name,omitempty"`
	Answers map[string]int `yaml:"answers" json:"answers"`
}

// Load reads a sheet, choosing JSON or YAML by file extension.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answer sheet: %w", err)
	}
	var s *Sheet
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		s, err = ParseJSON(data)
	case ".yaml", ".yml", "":
		s, err = ParseYAML(data)
	default:
		return nil, fmt.Errorf("%s: unsupported answer sheet format (want .yaml, .yml or .json)", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseYAML decodes a YAML sheet. Unknown fields are rejected.
func ParseYAML(data []byte) (*Sheet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Sheet
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("answer sheet is empty")
		}
		return nil, fmt.Errorf("parse answer sheet: %w", err)
	}
	return s.check()
}

// ParseJSON decodes a JSON sheet. Unknown fields are rejected.
func ParseJSON(data []byte) (*Sheet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s Sheet
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("answer sheet is empty")
		}
		return nil, fmt.Errorf("parse answer sheet: %w", err)
	}
	return s.check()
}

func (s Sheet) check() (*Sheet, error) {
	if s.Answers == nil {
		s.Answers = map[string]int{}
	}
	return &s, nil
}
