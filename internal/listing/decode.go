package listing

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

// ErrInvalidRecord wraps every validation failure raised at ingestion.
var ErrInvalidRecord = errors.New("invalid listing record")

// Format is the encoding of a listings document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported listings file extension %q", filepath.Ext(path))
	}
}

// envelope is the paged response shape: {"data": [...], ...}.
type envelope struct {
	Data []Record `json:"data" yaml:"data"`
}

// Decode reads a listings document and validates it. The document is either a
// bare array of records or an object carrying them under "data".
func Decode(r io.Reader, format Format) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read listings: %w", err)
	}

	records, err := unmarshal(raw, format)
	if err != nil {
		return nil, err
	}

	if err := Validate(records); err != nil {
		return nil, err
	}

	return records, nil
}

// DecodeFile decodes and validates the listings file at path.
func DecodeFile(path string) ([]Record, error) {
	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(records); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// ReadFile parses the listings file at path without validating it, so
// callers can fill in missing ids first.
func ReadFile(path string) ([]Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listings file: %w", err)
	}

	records, err := unmarshal(raw, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

func unmarshal(raw []byte, format Format) ([]Record, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []Record{}, nil
	}

	switch format {
	case FormatJSON:
		if trimmed[0] == '{' {
			var env envelope
			if err := json.Unmarshal(trimmed, &env); err != nil {
				return nil, fmt.Errorf("failed to parse listings JSON: %w", err)
			}

			return env.Data, nil
		}

		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("failed to parse listings JSON: %w", err)
		}

		return records, nil
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(trimmed, &node); err != nil {
			return nil, fmt.Errorf("failed to parse listings YAML: %w", err)
		}

		if len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
			var env envelope
			if err := node.Decode(&env); err != nil {
				return nil, fmt.Errorf("failed to parse listings YAML: %w", err)
			}

			return env.Data, nil
		}

		var records []Record
		if err := node.Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to parse listings YAML: %w", err)
		}

		return records, nil
	default:
		return nil, fmt.Errorf("unsupported listings format %q", format)
	}
}

// Validate checks the record contract once at the ingestion boundary. All
// problems are reported together.
func Validate(records []Record) error {
	var errs []error

	seen := make(map[string]int, len(records))
	for i, r := range records {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("record %d: missing id", i))
		} else if first, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("record %d: duplicate id %q (first seen at record %d)", i, id, first))
		} else {
			seen[id] = i
		}

		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Errorf("record %d: missing name", i))
		}

		if c := r.Coordinates; c != nil {
			if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
				errs = append(errs, fmt.Errorf("record %d: coordinates out of range (%g, %g)", i, c.Lat, c.Lng))
			}
		}

		if r.Rating != nil && *r.Rating < 0 {
			errs = append(errs, fmt.Errorf("record %d: negative rating", i))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidRecord, errors.Join(errs...))
}
