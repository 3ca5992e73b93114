package fieldbox

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/goliatone/go-fieldbox/pkg/container"
	"github.com/goliatone/go-fieldbox/pkg/field"
	"github.com/goliatone/go-fieldbox/pkg/lifecycle"
	"github.com/goliatone/go-fieldbox/pkg/manifest"
	"github.com/goliatone/go-fieldbox/pkg/markup"
	"github.com/goliatone/go-fieldbox/pkg/registry"
	"github.com/goliatone/go-fieldbox/pkg/security"
	"github.com/goliatone/go-fieldbox/pkg/storage"
)

// Option customises the Kit configuration.
type Option func(*Kit)

// WithRegistry injects a pre-built field registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(k *Kit) {
		if reg != nil {
			k.registry = reg
		}
	}
}

// WithStorage injects the host's value store. Defaults to the in-memory
// store.
func WithStorage(store container.Storage) Option {
	return func(k *Kit) {
		if store != nil {
			k.storage = store
		}
	}
}

// WithSecurity injects the host's authorization checker. Defaults to an
// allow-all policy, which examples and tests rely on; production hosts
// should always supply their own.
func WithSecurity(sec container.Security) Option {
	return func(k *Kit) {
		if sec != nil {
			k.security = sec
		}
	}
}

// WithSnapshots injects the transient snapshot check.
func WithSnapshots(snapshots container.Snapshots) Option {
	return func(k *Kit) {
		k.snapshots = snapshots
	}
}

// WithLogger injects a structured logger shared by every container the kit
// constructs.
func WithLogger(logger *zap.Logger) Option {
	return func(k *Kit) {
		if logger != nil {
			k.logger = logger
		}
	}
}

// WithTemplateEngine registers the template field kind backed by the given
// engine.
func WithTemplateEngine(engine markup.TemplateRenderer) Option {
	return func(k *Kit) {
		k.templateEngine = engine
	}
}

// Kit bundles a field registry, a lifecycle hub, and shared collaborators so
// hosts can wire the framework with a single constructor call.
type Kit struct {
	registry       *registry.Registry
	hub            *lifecycle.Hub
	storage        container.Storage
	security       container.Security
	snapshots      container.Snapshots
	logger         *zap.Logger
	templateEngine markup.TemplateRenderer
	initialiseErr  error
}

// New constructs a Kit applying any provided options. Missing collaborators
// are initialised with the built-in implementations.
func New(options ...Option) *Kit {
	k := &Kit{
		hub:    lifecycle.NewHub(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(k)
	}

	if k.registry == nil {
		k.registry = registry.New()
	}
	if k.storage == nil {
		k.storage = storage.NewMemory()
	}
	if k.security == nil {
		k.security = security.AllowAll()
	}
	if k.templateEngine != nil {
		if err := k.registry.Kinds().Register(field.KindTemplate, field.TemplateKind(k.templateEngine)); err != nil {
			k.initialiseErr = err
		}
	}
	return k
}

// Registry returns the kit's field registry.
func (k *Kit) Registry() *registry.Registry { return k.registry }

// Hub returns the kit's lifecycle hub.
func (k *Kit) Hub() *lifecycle.Hub { return k.hub }

// Register adds a field definition to the registry.
func (k *Kit) Register(def field.Definition) error {
	if k.initialiseErr != nil {
		return k.initialiseErr
	}
	return k.registry.Register(def)
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (k *Kit) MustRegister(def field.Definition) {
	if err := k.Register(def); err != nil {
		panic(err)
	}
}

// LoadManifest registers the fields declared in a YAML/JSON manifest
// document.
func (k *Kit) LoadManifest(data []byte) error {
	if k.initialiseErr != nil {
		return k.initialiseErr
	}
	return manifest.Load(data, k.registry)
}

// NewContainer constructs a container backed by the kit's registry and
// collaborators, subscribes it to the lifecycle hub, and binds the named
// fields in order.
func (k *Kit) NewContainer(title string, fieldNames []string, options ...container.Option) (*container.Container, error) {
	if k.initialiseErr != nil {
		return nil, k.initialiseErr
	}

	base := []container.Option{
		container.WithStorage(k.storage),
		container.WithSecurity(k.security),
		container.WithSnapshots(k.snapshots),
		container.WithLogger(k.logger),
	}
	c, err := container.New(title, k.registry, append(base, options...)...)
	if err != nil {
		return nil, err
	}
	for _, name := range fieldNames {
		if err := c.AddField(name); err != nil {
			return nil, err
		}
	}
	if err := k.hub.Subscribe(c); err != nil {
		return nil, err
	}
	return c, nil
}

// RenderEntity dispatches the render trigger for an entity to every
// subscribed container.
func (k *Kit) RenderEntity(ctx context.Context, w io.Writer, entityType, entityID string, carrier container.Carrier) error {
	return k.hub.DispatchRender(ctx, w, entityType, entityID, carrier)
}

// SaveEntity dispatches the save trigger for an entity to every subscribed
// container.
func (k *Kit) SaveEntity(ctx context.Context, entityType, entityID string, carrier container.Carrier) error {
	return k.hub.DispatchSave(ctx, entityType, entityID, carrier)
}
