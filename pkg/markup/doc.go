// Package markup declares the template renderer seam used by template-driven
// field kinds. The pongo subpackage provides the default engine; hosts with
// an existing template stack implement TemplateRenderer instead.
package markup
