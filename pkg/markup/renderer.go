package markup

// TemplateRenderer renders inline template source against a data map. Engines
// must escape interpolated values for HTML unless a template explicitly opts
// out.
type TemplateRenderer interface {
	RenderString(source string, data map[string]any) (string, error)
}
