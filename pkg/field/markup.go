package field

import (
	"html"
	"io"
	"sort"
	"strings"
)

// InputID returns the element id used by the default markup for a field.
func InputID(name string) string {
	return "fb-" + name
}

// WriteInput emits the default input element for the definition: a labelled
// control wrapped in a field div, with the label and current value escaped.
func WriteInput(def Definition, value string, w io.Writer) error {
	var builder strings.Builder
	builder.Grow(256)

	builder.WriteString(`<div class="field field-`)
	builder.WriteString(html.EscapeString(def.Kind))
	builder.WriteString(`" data-field="`)
	builder.WriteString(html.EscapeString(def.Name))
	builder.WriteString("\">\n")

	builder.WriteString(`    <label for="`)
	builder.WriteString(html.EscapeString(InputID(def.Name)))
	builder.WriteString(`">`)
	builder.WriteString(html.EscapeString(def.DisplayLabel()))
	if def.Required {
		builder.WriteString(` *`)
	}
	builder.WriteString("</label>\n")

	builder.WriteString("    ")
	writeControl(&builder, def, value)
	builder.WriteByte('\n')

	if desc := strings.TrimSpace(def.Description); desc != "" {
		builder.WriteString(`    <small>`)
		builder.WriteString(html.EscapeString(desc))
		builder.WriteString("</small>\n")
	}

	builder.WriteString("</div>\n")

	_, err := io.WriteString(w, builder.String())
	return err
}

func writeControl(builder *strings.Builder, def Definition, value string) {
	switch def.Kind {
	case KindTextarea:
		builder.WriteString(`<textarea id="`)
		builder.WriteString(html.EscapeString(InputID(def.Name)))
		builder.WriteString(`" name="`)
		builder.WriteString(html.EscapeString(def.Name))
		builder.WriteString(`"`)
		writeExtraAttrs(builder, def)
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteString(`</textarea>`)
	case KindSelect:
		builder.WriteString(`<select id="`)
		builder.WriteString(html.EscapeString(InputID(def.Name)))
		builder.WriteString(`" name="`)
		builder.WriteString(html.EscapeString(def.Name))
		builder.WriteString(`"`)
		writeExtraAttrs(builder, def)
		builder.WriteString(">\n")
		for _, choice := range def.Choices {
			builder.WriteString(`        <option value="`)
			builder.WriteString(html.EscapeString(choice.Value))
			builder.WriteString(`"`)
			if choice.Value == value {
				builder.WriteString(` selected`)
			}
			builder.WriteString(`>`)
			if choice.Label != "" {
				builder.WriteString(html.EscapeString(choice.Label))
			} else {
				builder.WriteString(html.EscapeString(choice.Value))
			}
			builder.WriteString("</option>\n")
		}
		builder.WriteString(`    </select>`)
	case KindCheckbox:
		builder.WriteString(`<input type="checkbox" id="`)
		builder.WriteString(html.EscapeString(InputID(def.Name)))
		builder.WriteString(`" name="`)
		builder.WriteString(html.EscapeString(def.Name))
		builder.WriteString(`" value="1"`)
		if value == "1" {
			builder.WriteString(` checked`)
		}
		writeExtraAttrs(builder, def)
		builder.WriteString(`>`)
	default:
		inputType := "text"
		if def.Kind == KindNumber {
			inputType = "number"
		}
		if override := strings.TrimSpace(def.Attrs["type"]); override != "" {
			inputType = override
		}
		builder.WriteString(`<input type="`)
		builder.WriteString(html.EscapeString(inputType))
		builder.WriteString(`" id="`)
		builder.WriteString(html.EscapeString(InputID(def.Name)))
		builder.WriteString(`" name="`)
		builder.WriteString(html.EscapeString(def.Name))
		builder.WriteString(`" value="`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteString(`"`)
		if placeholder := strings.TrimSpace(def.Placeholder); placeholder != "" {
			builder.WriteString(` placeholder="`)
			builder.WriteString(html.EscapeString(placeholder))
			builder.WriteString(`"`)
		}
		writeExtraAttrs(builder, def)
		builder.WriteString(`>`)
	}
}

// writeExtraAttrs appends Attrs in sorted order so output stays deterministic.
// The "type" attribute is consumed by writeControl and skipped here.
func writeExtraAttrs(builder *strings.Builder, def Definition) {
	if len(def.Attrs) == 0 {
		return
	}
	names := make([]string, 0, len(def.Attrs))
	for name := range def.Attrs {
		if name == "type" || strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(name))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(def.Attrs[name]))
		builder.WriteString(`"`)
	}
}
