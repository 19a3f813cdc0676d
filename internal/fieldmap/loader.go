package fieldmap

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"crmcols/internal/column"
	"crmcols/internal/naming"
)

// File is the on-disk field-map document.
type File struct {
	Version  string                       `yaml:"version"`
	Entities map[string]map[string]string `yaml:"entities"`
}

// LoadFile loads and parses a YAML field-map file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field map %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File. Unknown entity types are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse field map YAML: %w", err)
	}

	if err := normalize(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// normalize fills the version and rewrites entity names to their canonical
// form.
func normalize(f *File) error {
	if f.Version == "" {
		f.Version = "1"
	}

	if len(f.Entities) == 0 {
		return nil
	}

	out := make(map[string]map[string]string, len(f.Entities))
	for name, labels := range f.Entities {
		entity, err := column.ParseEntityType(name)
		if err != nil {
			return fmt.Errorf("field map: %w", err)
		}

		dst := out[entity.String()]
		if dst == nil {
			dst = make(map[string]string, len(labels))
			out[entity.String()] = dst
		}
		for key, label := range labels {
			if key == "" || label == "" {
				continue
			}
			dst[key] = label
		}
	}
	f.Entities = out

	return nil
}

// ForEntity returns the labels for entity, nil when the file has none.
func (f *File) ForEntity(entity column.EntityType) naming.FieldNames {
	if f == nil {
		return nil
	}
	labels := f.Entities[entity.String()]
	if len(labels) == 0 {
		return nil
	}
	out := make(naming.FieldNames, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out
}

// Set records one label, creating the entity section when needed.
func (f *File) Set(entity column.EntityType, key, label string) {
	if f.Entities == nil {
		f.Entities = make(map[string]map[string]string)
	}
	labels := f.Entities[entity.String()]
	if labels == nil {
		labels = make(map[string]string)
		f.Entities[entity.String()] = labels
	}
	labels[key] = label
}

// EntityNames returns the entity sections present, sorted.
func (f *File) EntityNames() []string {
	names := make([]string, 0, len(f.Entities))
	for name := range f.Entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal field map: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write field map %s: %w", path, err)
	}

	return nil
}
