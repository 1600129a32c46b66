// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the serialization of a record.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" (case-insensitive); "" means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Marshal serializes v. JSON output is indented by two spaces.
func Marshal(f Format, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses data into v. Syntax and type errors wrap ErrMalformed.
func Unmarshal(f Format, data []byte, v any) error {
	return Decode(bytes.NewReader(data), f, v)
}

// Encode writes v to w.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Decode reads one document from r into v. Syntax and type errors wrap
// ErrMalformed; semantic checks happen in the Decode* record functions.
func Decode(r io.Reader, f Format, v any) error {
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(v)
	case YAML:
		err = yaml.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
