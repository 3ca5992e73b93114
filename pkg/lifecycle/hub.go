// Package lifecycle connects containers to the host's render and save
// triggers. Containers subscribe per entity type; the host dispatches
// "entity about to render its form" and "entity about to be saved"
// notifications into the hub, which fans them out in subscription order.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/goliatone/go-fieldbox/pkg/container"
)

// Hub routes host lifecycle notifications to subscribed containers.
type Hub struct {
	mu         sync.RWMutex
	containers map[string][]*container.Container
}

// NewHub constructs an empty hub.
func NewHub() *Hub {
	return &Hub{containers: make(map[string][]*container.Container)}
}

// Subscribe registers a container for its entity type's notifications.
func (h *Hub) Subscribe(c *container.Container) error {
	if c == nil {
		return errors.New("lifecycle: container is required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.containers[c.EntityType()] = append(h.containers[c.EntityType()], c)
	return nil
}

// Subscribed returns the containers registered for an entity type, in
// subscription order.
func (h *Hub) Subscribed(entityType string) []*container.Container {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return append([]*container.Container(nil), h.containers[entityType]...)
}

// DispatchRender handles the "entity about to render its form" notification:
// every subscribed container renders into w, in subscription order. The first
// render failure aborts, since partial forms are worse than no form.
func (h *Hub) DispatchRender(ctx context.Context, w io.Writer, entityType, entityID string, carrier container.Carrier) error {
	for _, c := range h.Subscribed(entityType) {
		if err := c.RenderForm(ctx, w, entityID, carrier); err != nil {
			return fmt.Errorf("lifecycle: render container %q: %w", c.Name(), err)
		}
	}
	return nil
}

// DispatchSave handles the "entity about to be saved" notification: every
// subscribed container runs its save pipeline. One container failing never
// stops the others; failures come back joined.
func (h *Hub) DispatchSave(ctx context.Context, entityType, entityID string, carrier container.Carrier) error {
	var errs []error
	for _, c := range h.Subscribed(entityType) {
		if err := c.Save(ctx, entityID, carrier); err != nil {
			errs = append(errs, fmt.Errorf("lifecycle: save container %q: %w", c.Name(), err))
		}
	}
	return errors.Join(errs...)
}
