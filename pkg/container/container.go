package container

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-fieldbox/pkg/registry"
)

const defaultEntityType = "post"

// Option customises container construction.
type Option func(*Container)

// WithName overrides the identifier derived from the title.
func WithName(name string) Option {
	return func(c *Container) {
		c.name = strings.TrimSpace(name)
	}
}

// WithEntityType sets the entity type the container binds fields for.
// Defaults to "post".
func WithEntityType(entityType string) Option {
	return func(c *Container) {
		if trimmed := strings.TrimSpace(entityType); trimmed != "" {
			c.entityType = trimmed
		}
	}
}

// WithStorage injects the host's value store.
func WithStorage(storage Storage) Option {
	return func(c *Container) {
		c.storage = storage
	}
}

// WithSecurity injects the host's authorization checker.
func WithSecurity(security Security) Option {
	return func(c *Container) {
		c.security = security
	}
}

// WithSnapshots injects the transient snapshot check. When omitted, no entity
// is considered transient.
func WithSnapshots(snapshots Snapshots) Option {
	return func(c *Container) {
		c.snapshots = snapshots
	}
}

// WithLogger injects a structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Container owns an ordered collection of bound fields for one entity type
// and runs the render and save pipelines against them. Containers are
// configured once at boot; render and save are safe to call repeatedly, one
// entity at a time.
type Container struct {
	name       string
	title      string
	entityType string
	registry   *registry.Registry
	storage    Storage
	security   Security
	snapshots  Snapshots
	logger     *zap.Logger
	bindings   []Binding
}

// New constructs a container titled title, binding fields out of reg. Storage
// and security collaborators are required.
func New(title string, reg *registry.Registry, options ...Option) (*Container, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("container: title is required")
	}
	if reg == nil {
		return nil, errors.New("container: registry is required")
	}

	c := &Container{
		title:      strings.TrimSpace(title),
		entityType: defaultEntityType,
		registry:   reg,
		logger:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.name == "" {
		c.name = slugify(c.title)
	}
	if c.storage == nil {
		return nil, errors.New("container: storage collaborator is required")
	}
	if c.security == nil {
		return nil, errors.New("container: security collaborator is required")
	}
	return c, nil
}

// Name returns the container identifier.
func (c *Container) Name() string { return c.name }

// Title returns the display title.
func (c *Container) Title() string { return c.title }

// EntityType returns the entity type the container serves.
func (c *Container) EntityType() string { return c.entityType }

// AddField looks up name in the registry for this container's entity type and
// appends a binding for it. Registration order is render and save order.
func (c *Container) AddField(name string) error {
	def, err := c.registry.Lookup(c.entityType, name)
	if err != nil {
		return err
	}
	c.bindings = append(c.bindings, Binding{container: c, def: def})
	return nil
}

// Fields returns the bound fields in binding order.
func (c *Container) Fields() []Binding {
	return append([]Binding(nil), c.bindings...)
}

// RenderForm writes the anti-forgery token followed by every bound field's
// input markup, in binding order. The carrier may be nil for plain GET
// renders.
func (c *Container) RenderForm(ctx context.Context, w io.Writer, entityID string, carrier Carrier) error {
	if w == nil {
		return errors.New("container: writer is required")
	}

	token := c.security.AntiForgeryToken(c.name)
	if _, err := fmt.Fprintf(w, "<input type=\"hidden\" name=%q value=\"%s\">\n",
		TokenFieldName, html.EscapeString(token)); err != nil {
		return err
	}

	for _, binding := range c.bindings {
		if err := binding.render(ctx, entityID, carrier, w); err != nil {
			return fmt.Errorf("container: render field %q: %w", binding.def.Name, err)
		}
	}
	return nil
}

// Save runs the per-field pipeline for every bound field. Saves against
// transient snapshots are silent no-ops. A failure on one field never stops
// the remaining fields; collected failures come back joined.
func (c *Container) Save(ctx context.Context, entityID string, carrier Carrier) error {
	if c.snapshots != nil && c.snapshots.IsTransientSnapshot(entityID) {
		c.logger.Debug("skipping save for transient snapshot",
			zap.String("container", c.name),
			zap.String("entity_id", entityID))
		return nil
	}

	var errs []error
	for _, binding := range c.bindings {
		if err := binding.save(ctx, entityID, carrier); err != nil {
			c.logger.Warn("field save failed",
				zap.String("container", c.name),
				zap.String("field", binding.def.Name),
				zap.String("entity_id", entityID),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("field %q: %w", binding.def.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Value reads the persisted value for (entityID, fieldName). Unset values and
// read failures both come back as "" so renders never fail on missing data.
func (c *Container) Value(ctx context.Context, entityID, fieldName string) string {
	value, err := c.storage.ReadValue(ctx, entityID, fieldName)
	if err != nil {
		c.logger.Debug("value read failed",
			zap.String("container", c.name),
			zap.String("field", fieldName),
			zap.String("entity_id", entityID),
			zap.Error(err))
		return ""
	}
	return value
}

func slugify(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))
	var builder strings.Builder
	builder.Grow(len(lowered))
	previousDash := false
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			builder.WriteRune(r)
			previousDash = false
		case !previousDash && builder.Len() > 0:
			builder.WriteByte('-')
			previousDash = true
		}
	}
	return strings.TrimSuffix(builder.String(), "-")
}
