package field

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestKindSet_Builtins(t *testing.T) {
	kinds := NewKinds()
	for _, name := range []string{KindText, KindTextarea, KindNumber, KindCheckbox, KindSelect} {
		if !kinds.Has(name) {
			t.Fatalf("builtin kind %q missing", name)
		}
	}
	if kinds.Has(KindTemplate) {
		t.Fatal("template kind should require explicit registration")
	}
}

func TestKindSet_RegisterDuplicate(t *testing.T) {
	kinds := NewKinds()
	if err := kinds.Register(KindText, textFactory); err == nil {
		t.Fatal("expected duplicate kind registration to fail")
	}
}

func TestKindSet_BuildUnknownKind(t *testing.T) {
	kinds := NewKinds()
	_, err := kinds.Build(Definition{Name: "x", EntityType: "post", Kind: "hologram"})
	if err == nil {
		t.Fatal("expected unknown kind to fail at build time")
	}
}

func TestKindSet_BuildInstallsDefaults(t *testing.T) {
	kinds := NewKinds()

	built, err := kinds.Build(Definition{Name: "color", EntityType: "post", Kind: KindText})
	if err != nil {
		t.Fatalf("build text: %v", err)
	}
	if built.Sanitize == nil {
		t.Fatal("text kind should install a sanitizer")
	}
	if got := built.Sanitize("<i>x</i>"); got != "x" {
		t.Fatalf("text sanitizer should strip tags, got %q", got)
	}
}

func TestKindSet_BuildKeepsCallerStrategies(t *testing.T) {
	kinds := NewKinds()

	custom := func(raw string) string { return "custom:" + raw }
	built, err := kinds.Build(Definition{
		Name:       "color",
		EntityType: "post",
		Kind:       KindText,
		Sanitize:   custom,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := built.Sanitize("v"); got != "custom:v" {
		t.Fatalf("caller sanitizer replaced, got %q", got)
	}
}

func TestSelectFactory_RequiresChoices(t *testing.T) {
	kinds := NewKinds()
	_, err := kinds.Build(Definition{Name: "layout", EntityType: "post", Kind: KindSelect})
	if err == nil {
		t.Fatal("expected select without choices to fail")
	}
}

func TestNumberFactory_RejectsInvertedBounds(t *testing.T) {
	kinds := NewKinds()
	min, max := 10.0, 1.0
	_, err := kinds.Build(Definition{Name: "n", EntityType: "post", Kind: KindNumber, Min: &min, Max: &max})
	if err == nil {
		t.Fatal("expected min above max to fail")
	}
}

type stubEngine struct {
	lastData map[string]any
	output   string
	err      error
}

func (s *stubEngine) RenderString(source string, data map[string]any) (string, error) {
	s.lastData = data
	if s.err != nil {
		return "", s.err
	}
	if s.output != "" {
		return s.output, nil
	}
	return source, nil
}

type staticHost map[string]string

func (h staticHost) Value(_ context.Context, name string) string { return h[name] }
func (h staticHost) Authorized(context.Context, string) bool     { return true }
func (h staticHost) Submitted(string) (string, bool)             { return "", false }

func TestTemplateKind(t *testing.T) {
	engine := &stubEngine{output: "<div>rendered</div>"}
	kinds := NewKinds()
	if err := kinds.Register(KindTemplate, TemplateKind(engine)); err != nil {
		t.Fatalf("register template kind: %v", err)
	}

	built, err := kinds.Build(Definition{
		Name:       "accent",
		EntityType: "post",
		Kind:       KindTemplate,
		Label:      "Accent",
		Template:   `<input name="{{ name }}" value="{{ value }}">`,
	})
	if err != nil {
		t.Fatalf("build template field: %v", err)
	}
	if built.Render == nil {
		t.Fatal("template kind should install a renderer")
	}

	var buf bytes.Buffer
	req := Request{Field: built, EntityID: "7", Host: staticHost{"accent": "teal"}}
	if err := built.Render(context.Background(), req, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "rendered") {
		t.Fatalf("engine output not written: %q", buf.String())
	}
	if engine.lastData["value"] != "teal" {
		t.Fatalf("current value not passed to template, got %v", engine.lastData["value"])
	}
	if engine.lastData["label"] != "Accent" {
		t.Fatalf("label not passed to template, got %v", engine.lastData["label"])
	}
}

func TestTemplateKind_RequiresSource(t *testing.T) {
	kinds := NewKinds()
	if err := kinds.Register(KindTemplate, TemplateKind(&stubEngine{})); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := kinds.Build(Definition{Name: "x", EntityType: "post", Kind: KindTemplate})
	if err == nil {
		t.Fatal("expected empty template source to fail")
	}
}
