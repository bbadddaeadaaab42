// Package manifest reads library record lists from disk and writes locate
// reports back out. The format is picked from the file extension:
// .yaml/.yml, .toml or .json.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/tkpair/pkg/locate"
	"github.com/arc-language/tkpair/pkg/tree"
)

// Format identifies a manifest encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for file extensions without an encoding
var ErrUnknownFormat = errors.New("unknown manifest format")

// Record is the on-disk form of a locate.LibraryRecord
type Record struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Path string `json:"path" yaml:"path" toml:"path"`
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
}

// File is the top-level document holding records
type File struct {
	Records []Record `json:"records" yaml:"records" toml:"records"`
}

// Pair is the on-disk form of a locate.LocatedPair
type Pair struct {
	InterpreterRoot string `json:"interpreter_root" yaml:"interpreter_root" toml:"interpreter_root"`
	ToolkitRoot     string `json:"toolkit_root" yaml:"toolkit_root" toml:"toolkit_root"`
	Version         string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
}

// Report describes the outcome of one locate and collect run
type Report struct {
	Platform string       `json:"platform" yaml:"platform" toml:"platform"`
	Skipped  bool         `json:"skipped,omitempty" yaml:"skipped,omitempty" toml:"skipped,omitempty"`
	Pair     *Pair        `json:"pair,omitempty" yaml:"pair,omitempty" toml:"pair,omitempty"`
	Entries  []tree.Entry `json:"entries,omitempty" yaml:"entries,omitempty" toml:"entries,omitempty"`
}

// FormatFor returns the format matching the extension of path
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads library records from path
func Load(path string) ([]locate.LibraryRecord, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return Decode(data, format)
}

// Decode parses records encoded in format
func Decode(data []byte, format Format) ([]locate.LibraryRecord, error) {
	var file File
	if err := unmarshal(data, format, &file); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	records := make([]locate.LibraryRecord, 0, len(file.Records))
	for i, r := range file.Records {
		if r.Name == "" {
			return nil, fmt.Errorf("record %d: name is required", i)
		}
		records = append(records, locate.LibraryRecord{
			Name: r.Name,
			Path: r.Path,
			Kind: locate.ParseKind(r.Kind),
		})
	}
	return records, nil
}

// FromRecords converts records into their on-disk form
func FromRecords(records []locate.LibraryRecord) File {
	file := File{Records: make([]Record, 0, len(records))}
	for _, r := range records {
		file.Records = append(file.Records, Record{Name: r.Name, Path: r.Path, Kind: r.Kind.String()})
	}
	return file
}

// NewPair converts a located pair into its on-disk form
func NewPair(p *locate.LocatedPair) *Pair {
	if p == nil {
		return nil
	}
	return &Pair{
		InterpreterRoot: p.InterpreterRoot,
		ToolkitRoot:     p.ToolkitRoot,
		Version:         p.Version,
	}
}

// Save writes v (a File or Report) to path in the format matching its extension
func Save(path string, v any) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	data, err := Encode(v, format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating manifest directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Encode marshals v in format
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshaling yaml: %w", err)
		}
		return data, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, fmt.Errorf("marshaling toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatTOML:
		_, err := toml.Decode(string(data), v)
		return err
	case FormatJSON:
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
