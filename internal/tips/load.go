package tips

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a tips file yields no usable entries.
var ErrEmpty = errors.New("tips file has no usable entries")

// Format is the encoding of a tips file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the decoder from the file extension. JSON goes through
// the YAML decoder.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads the tips file at path. It never fails: a missing, unreadable or
// empty file is reported at info level and the built-in table is returned.
func Load(path string) *Table {
	if path == "" {
		slog.Info("no tips file configured, using built-in tips")
		return Fallback()
	}

	t, err := LoadFile(path)
	if err != nil {
		slog.Info("using built-in tips", "path", path, "reason", err)
		return Fallback()
	}

	slog.Debug("loaded tips", "path", path, "months", t.Len())
	return t
}

// LoadFile reads and parses the tips file at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tips file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read tips file: %w", err)
	}

	entries, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}

	return NewTable(entries, SourceFile, path), nil
}

// Parse decodes a tips document into month -> tip. When the document has a
// top-level "north" section only that section is read; southern tips are
// always derived by offset. Entries with a non-numeric key, a month outside
// 1-12 or a non-text value are skipped.
func Parse(data []byte, format Format) (map[int]string, error) {
	if format == FormatTOML {
		return parseTOML(data)
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (map[int]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tips yaml: %w", err)
	}

	entries := make(map[int]string)
	if len(doc.Content) == 0 {
		return entries, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse tips yaml: top level is not a mapping")
	}
	if north := yamlSection(root, "north"); north != nil {
		root = north
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}
		if val.Kind != yaml.ScalarNode || val.Tag == "!!null" {
			slog.Debug("skipping tip entry", "key", key.Value, "reason", "value is not text")
			continue
		}
		addEntry(entries, key.Value, val.Value)
	}

	return entries, nil
}

// yamlSection returns the mapping stored under name, matched case-insensitively.
func yamlSection(m *yaml.Node, name string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if strings.EqualFold(m.Content[i].Value, name) && m.Content[i+1].Kind == yaml.MappingNode {
			return m.Content[i+1]
		}
	}
	return nil
}

func parseTOML(data []byte) (map[int]string, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parse tips toml: %w", err)
	}

	for k, v := range raw {
		if section, ok := v.(map[string]any); ok && strings.EqualFold(k, "north") {
			raw = section
			break
		}
	}

	entries := make(map[int]string)
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			slog.Debug("skipping tip entry", "key", k, "reason", "value is not text")
			continue
		}
		addEntry(entries, k, s)
	}

	return entries, nil
}

func addEntry(entries map[int]string, key, tip string) {
	month, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		slog.Debug("skipping tip entry", "key", key, "reason", "key is not a month number")
		return
	}
	if month < 1 || month > 12 {
		slog.Debug("skipping tip entry", "key", key, "reason", "month out of range")
		return
	}
	tip = strings.TrimSpace(tip)
	if tip == "" {
		slog.Debug("skipping tip entry", "key", key, "reason", "empty tip")
		return
	}
	entries[month] = tip
}

// WriteFile writes entries to path as YAML, or TOML for a .toml path,
// creating parent directories as needed.
func WriteFile(path string, entries map[int]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create tips dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create tips file: %w", err)
	}
	defer f.Close()

	if FormatForPath(path) == FormatTOML {
		keyed := make(map[string]string, len(entries))
		for m, tip := range entries {
			keyed[strconv.Itoa(m)] = tip
		}
		if err := toml.NewEncoder(f).Encode(keyed); err != nil {
			return fmt.Errorf("encode tips: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode tips: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode tips: %w", err)
	}

	return nil
}
