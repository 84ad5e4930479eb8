package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store holds loaded form definitions keyed by id.
type Store struct {
	forms map[string]FormDefinition
}

// LoadDir loads every definition file below dir.
func LoadDir(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("config: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS walks fsys and parses JSON and YAML definition files. Unknown keys
// are rejected. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]FormDefinition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawID, def := range doc.Forms {
			id := strings.TrimSpace(rawID)
			if id == "" {
				return fmt.Errorf("config: file %s defines a form with an empty id", path)
			}
			if existing, exists := store.forms[id]; exists {
				return fmt.Errorf("config: duplicate form %q (files %s and %s)", id, existing.Source, path)
			}
			if err := validateDefinition(def, id, path); err != nil {
				return err
			}
			def.ID = id
			def.Source = path
			store.forms[id] = def
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the definition for id.
func (s *Store) Form(id string) (FormDefinition, bool) {
	if s == nil {
		return FormDefinition{}, false
	}
	def, ok := s.forms[id]
	return def, ok
}

// IDs returns the form ids sorted.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, fmt.Errorf("config: file %s is empty", source)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return documentFile{}, fmt.Errorf("config: parse %s: %w", source, err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return documentFile{}, fmt.Errorf("config: parse %s: unexpected data after document", source)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return documentFile{}, fmt.Errorf("config: parse %s: %w", source, err)
		}
	}
	return doc, nil
}

func validateDefinition(def FormDefinition, id, source string) error {
	if len(def.Fields) == 0 {
		return fmt.Errorf("config: form %q (file %s) has no fields", id, source)
	}
	seen := make(map[string]struct{}, len(def.Fields))
	for idx, field := range def.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("config: form %q (file %s) field %d has no name", id, source, idx)
		}
		if strings.TrimSpace(field.Type) == "" {
			return fmt.Errorf("config: form %q (file %s) field %q has no type", id, source, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("config: form %q (file %s) defines field %q twice", id, source, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
