package container

import "context"

// TokenFieldName is the name of the hidden anti-forgery input emitted at the
// top of every rendered form.
const TokenFieldName = "_fieldbox_token"

// Storage is the host's persistent value store. Keys are the entity identity
// plus the field name.
type Storage interface {
	ReadValue(ctx context.Context, entityID, fieldName string) (string, error)
	WriteValue(ctx context.Context, entityID, fieldName, value string) error
}

// Security is the host's authorization checker and anti-forgery token issuer.
type Security interface {
	// CanEditField reports whether the current actor may write field-level
	// metadata for the entity.
	CanEditField(ctx context.Context, entityID, fieldName string) bool
	// AntiForgeryToken mints an opaque token scoped to a container name. The
	// token is emitted into render output as a hidden input.
	AntiForgeryToken(scope string) string
}

// Carrier is the submission carrier: it yields raw submitted values keyed by
// field name. Absent keys report ok=false, never an error; untouched or
// unauthorized fields are legitimate absences.
type Carrier interface {
	SubmittedValue(name string) (value string, ok bool)
}

// Snapshots reports whether an entity is a revision or autosave snapshot.
// Saves against transient snapshots are suppressed entirely.
type Snapshots interface {
	IsTransientSnapshot(entityID string) bool
}

// SnapshotFunc adapts a function to the Snapshots interface.
type SnapshotFunc func(entityID string) bool

func (f SnapshotFunc) IsTransientSnapshot(entityID string) bool { return f(entityID) }
