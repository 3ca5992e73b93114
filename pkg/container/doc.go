// Package container implements the form/persistence unit that owns an ordered
// set of bound fields. A container mediates between the submission carrier
// and storage: on render it emits an anti-forgery token followed by each
// field's input markup, on save it runs the authorize → sanitize → persist
// pipeline per field. Storage, security, the carrier, and the transient
// snapshot check are injected collaborator interfaces owned by the host.
//
// Binding a field never mutates the shared field.Definition; the per-binding
// wrapper carries the container reference instead, so one definition can be
// bound by containers serving concurrent requests.
package container
