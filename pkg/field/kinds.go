package field

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-fieldbox/pkg/markup"
)

// Built-in kind identifiers.
const (
	KindText     = "text"
	KindTextarea = "textarea"
	KindNumber   = "number"
	KindCheckbox = "checkbox"
	KindSelect   = "select"
	KindTemplate = "template"
)

// Factory finishes a Definition for its kind: it installs the kind's default
// strategies (leaving caller-supplied ones intact) and rejects configurations
// the kind cannot serve. Factories run at registration time so lookups never
// observe a partially-constructed field.
type Factory func(Definition) (Definition, error)

// KindSet maps kind names to factories. The zero value is unusable; construct
// with NewKinds, which installs the built-in kinds.
type KindSet struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewKinds constructs a KindSet with the built-in kinds registered.
func NewKinds() *KindSet {
	set := &KindSet{factories: make(map[string]Factory)}
	set.registerBuiltins()
	return set
}

// Register adds a kind factory. Duplicate names return an error.
func (k *KindSet) Register(name string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("field: kind factory is required")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("field: kind name is required")
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if _, exists := k.factories[trimmed]; exists {
		return fmt.Errorf("field: kind %q already registered", trimmed)
	}
	k.factories[trimmed] = factory
	return nil
}

// Has reports whether a kind is registered.
func (k *KindSet) Has(name string) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()

	_, ok := k.factories[name]
	return ok
}

// Names returns the sorted registered kind names.
func (k *KindSet) Names() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()

	names := make([]string, 0, len(k.factories))
	for name := range k.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build runs the kind factory for the definition. Unknown kinds fail here,
// at registration time.
func (k *KindSet) Build(def Definition) (Definition, error) {
	k.mu.RLock()
	factory, ok := k.factories[def.Kind]
	k.mu.RUnlock()
	if !ok {
		return Definition{}, fmt.Errorf("field: kind %q not registered", def.Kind)
	}
	return factory(def)
}

func (k *KindSet) registerBuiltins() {
	k.factories[KindText] = textFactory
	k.factories[KindTextarea] = textFactory
	k.factories[KindNumber] = numberFactory
	k.factories[KindCheckbox] = checkboxFactory
	k.factories[KindSelect] = selectFactory
}

func textFactory(def Definition) (Definition, error) {
	if def.Sanitize == nil {
		def.Sanitize = StripTags
	}
	return def, nil
}

func numberFactory(def Definition) (Definition, error) {
	if def.Min != nil && def.Max != nil && *def.Min > *def.Max {
		return Definition{}, fmt.Errorf("field: number %q has min above max", def.Name)
	}
	if def.Sanitize == nil {
		min, max := def.Min, def.Max
		def.Sanitize = func(raw string) string {
			return SanitizeNumber(raw, min, max)
		}
	}
	return def, nil
}

func checkboxFactory(def Definition) (Definition, error) {
	if def.Sanitize == nil {
		def.Sanitize = SanitizeCheckbox
	}
	return def, nil
}

func selectFactory(def Definition) (Definition, error) {
	if len(def.Choices) == 0 {
		return Definition{}, fmt.Errorf("field: select %q needs at least one choice", def.Name)
	}
	if def.Sanitize == nil {
		choices := append([]Choice(nil), def.Choices...)
		def.Sanitize = func(raw string) string {
			return SanitizeChoice(raw, choices)
		}
	}
	return def, nil
}

// TemplateKind returns a factory for template-driven fields rendered through
// the provided engine. The template receives the field name, label, required
// flag, attrs, and the current value. Register it under KindTemplate:
//
//	kinds.Register(field.KindTemplate, field.TemplateKind(engine))
func TemplateKind(renderer markup.TemplateRenderer) Factory {
	return func(def Definition) (Definition, error) {
		if renderer == nil {
			return Definition{}, fmt.Errorf("field: template kind needs a renderer")
		}
		if strings.TrimSpace(def.Template) == "" {
			return Definition{}, fmt.Errorf("field: template field %q has no template source", def.Name)
		}
		if def.Sanitize == nil {
			def.Sanitize = StripTags
		}
		if def.Render == nil {
			source := def.Template
			def.Render = func(ctx context.Context, req Request, w io.Writer) error {
				rendered, err := renderer.RenderString(source, map[string]any{
					"name":     req.Field.Name,
					"id":       InputID(req.Field.Name),
					"label":    req.Field.DisplayLabel(),
					"required": req.Field.Required,
					"attrs":    req.Field.Attrs,
					"value":    req.CurrentValue(ctx),
				})
				if err != nil {
					return fmt.Errorf("field: render template field %q: %w", req.Field.Name, err)
				}
				_, err = io.WriteString(w, rendered)
				return err
			}
		}
		return def, nil
	}
}
