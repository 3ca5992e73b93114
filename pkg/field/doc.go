// Package field defines the immutable field Definition shared across
// containers, the kind registry that constructs definitions from declarative
// options, and the default input markup and sanitization behaviour. Business
// logic customisation happens through explicit strategy funcs on Definition
// (Sanitize, Authorize, Value, Render) rather than subclass-style shadowing;
// a nil strategy falls back to the behaviour supplied by the owning container
// at call time. Definitions carry no reference back to a container: every
// operation receives the active binding context through a Request, so one
// Definition is safe to share between containers serving concurrent requests.
package field
