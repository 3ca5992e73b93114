// Package fieldbox is an extensible form-field framework: hosts register
// typed fields into a registry, bind them to containers, and let the
// containers render escaped input markup and run the authorize → sanitize →
// persist pipeline on save. Storage, security, the submission carrier, and
// lifecycle scheduling stay on the host side behind small collaborator
// interfaces.
//
// The Kit facade wires the common case — a registry, a lifecycle hub, and
// shared collaborators — while every piece under pkg/ can be used directly
// for hosts that prefer their own composition.
package fieldbox
