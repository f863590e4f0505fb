// Package rosterfile reads employee rosters from YAML or JSON files.
package rosterfile

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

	"paycalc/internal/domain/payroll"
)

var ErrUnsupportedFormat = errors.New("unsupported roster format")

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is the on-disk shape of a roster.
type File struct {
	Employees []payroll.Record `json:"employees" yaml:"employees"`
}

func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and validates the roster at path.
func Load(path string) (*payroll.Roster, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rosterfile: open: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

func Decode(r io.Reader, format Format) (*payroll.Roster, error) {
	var file File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("rosterfile: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("rosterfile: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	roster, err := payroll.BuildRoster(file.Employees)
	if err != nil {
		return nil, fmt.Errorf("rosterfile: %w", err)
	}
	return roster, nil
}

// Save writes roster to path in the format its extension names.
func Save(path string, roster *payroll.Roster) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rosterfile: create: %w", err)
	}
	if err := Encode(f, roster, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("rosterfile: close: %w", err)
	}
	return nil
}

// Encode writes the roster in the given format; Decode reads it back.
func Encode(w io.Writer, roster *payroll.Roster, format Format) error {
	file := File{Employees: make([]payroll.Record, 0, roster.Len())}
	for _, e := range roster.Employees() {
		file.Employees = append(file.Employees, payroll.RecordOf(e))
	}
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("rosterfile: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("rosterfile: encode yaml: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(file)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
