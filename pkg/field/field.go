package field

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Host is the view of the owning container a field operation may use. The
// container supplies a request-scoped implementation; definitions never hold
// one.
type Host interface {
	// Value returns the persisted value for a field of the bound entity, or
	// "" when unset.
	Value(ctx context.Context, name string) string
	// Authorized reports whether the current actor may write the named field.
	Authorized(ctx context.Context, name string) bool
	// Submitted reads the raw submitted value for a field. The second return
	// is false when the carrier has no entry for the name.
	Submitted(name string) (string, bool)
}

// Request carries the binding context for a single field operation: the
// definition being exercised, the entity it runs against, and the host
// container's default behaviour.
type Request struct {
	Field    Definition
	EntityID string
	Host     Host
}

// CurrentValue resolves the field's present value, preferring the
// definition's Value strategy over the host default.
func (r Request) CurrentValue(ctx context.Context) string {
	if r.Field.Value != nil {
		return r.Field.Value(ctx, r)
	}
	if r.Host == nil {
		return ""
	}
	return r.Host.Value(ctx, r.Field.Name)
}

// Sanitizer transforms a raw submitted value into the value that will be
// persisted. Implementations must be pure and idempotent for well-formed
// inputs.
type Sanitizer func(raw string) string

// Authorizer gates a single field write. It must be side-effect free.
type Authorizer func(ctx context.Context, req Request) bool

// ValueFunc sources the field's current value for rendering.
type ValueFunc func(ctx context.Context, req Request) string

// Renderer writes the field's input element markup. Output must escape the
// label and value for HTML; stored values are attacker-controlled.
type Renderer func(ctx context.Context, req Request, w io.Writer) error

// Choice is one option of a select field.
type Choice struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Definition describes one named datum: identity, presentation, and the
// strategies applied during render and save. Definitions are immutable after
// registration; the registry hands out copies.
type Definition struct {
	Name        string
	EntityType  string
	Kind        string
	Label       string
	Placeholder string
	Description string
	Required    bool

	// Choices constrains select fields; other kinds ignore it.
	Choices []Choice

	// Min and Max clamp number fields when set.
	Min *float64
	Max *float64

	// Template holds the template source for template-kind fields.
	Template string

	// Attrs are extra attributes copied onto the input element.
	Attrs map[string]string

	Sanitize  Sanitizer
	Authorize Authorizer
	Value     ValueFunc
	Render    Renderer
}

// Validate checks the definition's identity fields.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("field: name is required")
	}
	if strings.TrimSpace(d.EntityType) == "" {
		return errors.New("field: entity type is required")
	}
	if strings.TrimSpace(d.Kind) == "" {
		return errors.New("field: kind is required")
	}
	return nil
}

// DisplayLabel returns the label, falling back to the field name.
func (d Definition) DisplayLabel() string {
	if label := strings.TrimSpace(d.Label); label != "" {
		return label
	}
	return d.Name
}
