package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the catalog file format version this build writes.
// Files with the same major version are accepted.
const SchemaVersion = "v1.0.0"

type catalogFile struct {
	SchemaVersion  string         `yaml:"schema_version"`
	Title          string         `yaml:"title"`
	Questions      []Question     `yaml:"questions"`
	CorrectAnswers map[string]int `yaml:"correct_answers"`
}

// Load reads, parses and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	// A yaml.Node accepts any content, so KnownFields cannot mask a second document.
	if err := decoder.Decode(new(yaml.Node)); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse catalog: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := checkSchemaVersion(f.SchemaVersion); err != nil {
		return nil, err
	}
	return build(f.SchemaVersion, f.Title, f.Questions, f.CorrectAnswers)
}

func checkSchemaVersion(v string) error {
	if v == "" {
		return fmt.Errorf("parse catalog: schema_version is required")
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("parse catalog: schema_version %q is not a semantic version", v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("parse catalog: unsupported schema_version %s (want %s.x)", v, semver.Major(SchemaVersion))
	}
	return nil
}
