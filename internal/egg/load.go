package egg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Definition is a parsed egg definition.
type Definition struct {
	// File is where the definition was read from.
	File File
	// Name is the egg name used for duplicate detection.
	Name string
	// Author is the optional author field, informational only.
	Author string
	// Raw is the file content, uploaded to the panel unchanged.
	Raw json.RawMessage
}

// header holds the fields read from an egg; everything else stays in Raw.
type header struct {
	Name   string `json:"name"`
	Author string `json:"author"`
}

// LoadError reports an egg file that could not be read or parsed.
type LoadError struct {
	// Path is the file path relative to the repository root.
	Path string
	// Cause is the underlying read or decode error.
	Cause error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("could not parse %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads and parses an egg definition file. The file must hold a single
// JSON object; its name falls back to the file stem when missing or empty.
func Load(f File) (*Definition, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &LoadError{Path: f.RelPath, Cause: err}
	}
	return Parse(f, data)
}

// Parse parses egg definition bytes read from f.
func Parse(f File, data []byte) (*Definition, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &LoadError{Path: f.RelPath, Cause: fmt.Errorf("expected a JSON object")}
	}
	if !json.Valid(trimmed) {
		var probe map[string]any
		err := json.Unmarshal(trimmed, &probe)
		return nil, &LoadError{Path: f.RelPath, Cause: err}
	}

	var h header
	if err := json.Unmarshal(trimmed, &h); err != nil {
		return nil, &LoadError{Path: f.RelPath, Cause: err}
	}

	name := strings.TrimSpace(h.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
	}

	return &Definition{
		File:   f,
		Name:   name,
		Author: h.Author,
		Raw:    json.RawMessage(trimmed),
	}, nil
}
