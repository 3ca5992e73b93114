package container

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/goliatone/go-fieldbox/pkg/field"
)

// Binding pairs one shared field definition with the container it is bound
// to. Bindings are what containers iterate; the definition itself stays
// immutable.
type Binding struct {
	container *Container
	def       field.Definition
}

// Definition returns a copy of the bound field definition.
func (b Binding) Definition() field.Definition { return b.def }

// scope is the request-bound field.Host implementation handed to field
// strategies: it resolves defaults against the owning container, the entity
// being processed, and the active carrier.
type scope struct {
	container *Container
	entityID  string
	carrier   Carrier
}

var _ field.Host = scope{}

func (s scope) Value(ctx context.Context, name string) string {
	return s.container.Value(ctx, s.entityID, name)
}

func (s scope) Authorized(ctx context.Context, name string) bool {
	return s.container.security.CanEditField(ctx, s.entityID, name)
}

func (s scope) Submitted(name string) (string, bool) {
	if s.carrier == nil {
		return "", false
	}
	return s.carrier.SubmittedValue(name)
}

func (b Binding) request(entityID string, carrier Carrier) field.Request {
	return field.Request{
		Field:    b.def,
		EntityID: entityID,
		Host:     scope{container: b.container, entityID: entityID, carrier: carrier},
	}
}

// Authorized resolves the field's authorization: the definition strategy when
// set, the container's security default otherwise.
func (b Binding) Authorized(ctx context.Context, entityID string, carrier Carrier) bool {
	req := b.request(entityID, carrier)
	if b.def.Authorize != nil {
		return b.def.Authorize(ctx, req)
	}
	return req.Host.Authorized(ctx, b.def.Name)
}

// render writes the field's input element, delegating to the definition's
// Render strategy when present and the default markup otherwise.
func (b Binding) render(ctx context.Context, entityID string, carrier Carrier, w io.Writer) error {
	req := b.request(entityID, carrier)
	if b.def.Render != nil {
		return b.def.Render(ctx, req, w)
	}
	return field.WriteInput(b.def, req.CurrentValue(ctx), w)
}

// save is the per-field pipeline step: authorize, read the submitted value,
// sanitize, persist. Authorization denial is a silent skip, not an error; an
// absent submitted value sanitizes as "".
func (b Binding) save(ctx context.Context, entityID string, carrier Carrier) error {
	if !b.Authorized(ctx, entityID, carrier) {
		b.container.logger.Debug("field write denied",
			zap.String("container", b.container.name),
			zap.String("field", b.def.Name),
			zap.String("entity_id", entityID))
		return nil
	}

	raw, _ := b.request(entityID, carrier).Host.Submitted(b.def.Name)
	clean := raw
	if b.def.Sanitize != nil {
		clean = b.def.Sanitize(raw)
	}

	if err := b.container.storage.WriteValue(ctx, entityID, b.def.Name, clean); err != nil {
		return fmt.Errorf("write value: %w", err)
	}
	return nil
}
