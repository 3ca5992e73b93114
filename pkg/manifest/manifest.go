// Package manifest loads declarative field manifests (YAML or JSON) and
// registers them into a registry, so hosts can ship field sets as
// configuration instead of code.
package manifest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldbox/pkg/field"
	"github.com/goliatone/go-fieldbox/pkg/registry"
)

// FieldSpec is one declared field.
type FieldSpec struct {
	Name        string            `yaml:"name"`
	Kind        string            `yaml:"kind"`
	Label       string            `yaml:"label"`
	Placeholder string            `yaml:"placeholder"`
	Description string            `yaml:"description"`
	Required    bool              `yaml:"required"`
	Choices     []field.Choice    `yaml:"choices"`
	Min         *float64          `yaml:"min"`
	Max         *float64          `yaml:"max"`
	Template    string            `yaml:"template"`
	Attrs       map[string]string `yaml:"attrs"`
}

// Document is a parsed manifest: one entity type plus its field declarations.
type Document struct {
	EntityType string      `yaml:"entity_type"`
	Fields     []FieldSpec `yaml:"fields"`
}

// Parse decodes a manifest document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("manifest: parse document: %w", err)
	}
	if strings.TrimSpace(doc.EntityType) == "" {
		return Document{}, fmt.Errorf("manifest: entity_type is required")
	}
	if len(doc.Fields) == 0 {
		return Document{}, fmt.Errorf("manifest: document declares no fields")
	}
	return doc, nil
}

// Apply registers every declared field into reg. The first failure aborts and
// is returned; fields registered before it stay registered, so callers should
// treat a failed Apply as fatal boot configuration.
func (d Document) Apply(reg *registry.Registry) error {
	if reg == nil {
		return fmt.Errorf("manifest: registry is required")
	}
	for _, spec := range d.Fields {
		def := field.Definition{
			Name:        strings.TrimSpace(spec.Name),
			EntityType:  d.EntityType,
			Kind:        strings.TrimSpace(spec.Kind),
			Label:       spec.Label,
			Placeholder: spec.Placeholder,
			Description: spec.Description,
			Required:    spec.Required,
			Choices:     spec.Choices,
			Min:         spec.Min,
			Max:         spec.Max,
			Template:    spec.Template,
			Attrs:       spec.Attrs,
		}
		if err := reg.Register(def); err != nil {
			return fmt.Errorf("manifest: register field %q: %w", spec.Name, err)
		}
	}
	return nil
}

// Load parses data and applies it to reg.
func Load(data []byte, reg *registry.Registry) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	return doc.Apply(reg)
}

// LoadFS walks fsys and applies every manifest file (.yaml, .yml, .json) to
// reg. The first failure aborts the walk.
func LoadFS(fsys fs.FS, reg *registry.Registry) error {
	if fsys == nil {
		return nil
	}
	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("manifest: read %s: %w", path, err)
		}
		if err := Load(data, reg); err != nil {
			return fmt.Errorf("manifest: %s: %w", path, err)
		}
		return nil
	})
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
