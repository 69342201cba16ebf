// Package presets loads per-field default arguments from JSON or YAML files so
// templates can call a field by key alone while the site keeps its rendering
// choices (type, labels, date patterns) in configuration.
//
//	defaults:
//	  date_format: d/m/Y
//	fields:
//	  website:
//	    type: link
//	    link_text: Visit the site
//	  opening: "type=date&date_format=l jS F"
package presets

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-acfield/pkg/field"
)

// Store holds parsed presets keyed by field key.
type Store struct {
	defaults field.Config
	fields   map[string]Preset
}

// Preset is the configuration registered for one field key.
type Preset struct {
	Key    string
	Source string
	Config field.Config
}

type documentFile struct {
	Defaults any            `json:"defaults" yaml:"defaults"`
	Fields   map[string]any `json:"fields" yaml:"fields"`
}

// LoadFS walks fsys and parses every .json/.yaml/.yml file. A nil fsys yields
// an empty store. Defaults from several files are merged in lexical path order;
// a field key defined twice is an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fields: make(map[string]Preset)}
	if fsys == nil {
		return store, nil
	}

	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("presets: read %s: %w", path, err)
		}
		if err := store.add(data, path); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// Parse builds a store from a single in-memory document.
func Parse(data []byte, source string) (*Store, error) {
	store := &Store{fields: make(map[string]Preset)}
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	defaults, err := field.ParseArgs(normaliseArgs(doc.Defaults))
	if err != nil {
		return fmt.Errorf("presets: file %s defaults: %w", source, err)
	}
	cleared := append(slices.Clone(s.defaults.Clear), defaults.Clear...)
	s.defaults = field.Merge(s.defaults, defaults).Without(cleared...)

	for rawKey, rawArgs := range doc.Fields {
		key := strings.TrimSpace(rawKey)
		if key == "" {
			return fmt.Errorf("presets: file %s defines an empty field key", source)
		}
		if existing, exists := s.fields[key]; exists {
			return fmt.Errorf("presets: duplicate field %q (files %s and %s)", key, existing.Source, source)
		}
		cfg, err := field.ParseArgs(normaliseArgs(rawArgs))
		if err != nil {
			return fmt.Errorf("presets: file %s field %q: %w", source, key, err)
		}
		s.fields[key] = Preset{Key: key, Source: source, Config: cfg}
	}
	return nil
}

// Config returns the preset for key.
func (s *Store) Config(key string) (field.Config, bool) {
	if s == nil {
		return field.Config{}, false
	}
	preset, ok := s.fields[strings.TrimSpace(key)]
	if !ok {
		return field.Config{}, false
	}
	return preset.Config.Clone(), true
}

// Defaults returns the merged file-level defaults.
func (s *Store) Defaults() field.Config {
	if s == nil {
		return field.Config{}
	}
	return s.defaults.Clone()
}

// Keys returns the sorted field keys with presets.
func (s *Store) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.fields))
	for key := range s.fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Empty reports whether the store holds any presets or defaults.
func (s *Store) Empty() bool {
	if s == nil {
		return true
	}
	return len(s.fields) == 0 && isZero(s.defaults)
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("presets: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("presets: parse %s: invalid JSON or YAML", source)
}

// normaliseArgs converts YAML-decoded maps (which may carry non-string keys)
// into the shapes field.ParseArgs understands.
func normaliseArgs(raw any) any {
	switch v := raw.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[fmt.Sprint(key)] = value
		}
		return out
	default:
		return raw
	}
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func isZero(cfg field.Config) bool {
	return cfg.Type == "" && cfg.Label == "" && cfg.LinkText == "" &&
		cfg.ImageSize == "" && cfg.ImageClass == "" && cfg.ItemProp == "" &&
		cfg.DateFormat == "" && cfg.Before == "" && cfg.After == "" &&
		!cfg.SubField && cfg.ListSep == nil && cfg.ListLinks == nil &&
		cfg.ListType == "" && cfg.Taxonomy == "" && len(cfg.Extra) == 0 &&
		len(cfg.Clear) == 0
}
