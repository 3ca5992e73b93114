package registry_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldbox/pkg/field"
	"github.com/goliatone/go-fieldbox/pkg/registry"
)

func TestRegisterAndLookup(t *testing.T) {
	reg := registry.New()

	def := field.Definition{
		Name:       "background_color",
		EntityType: "post",
		Kind:       field.KindText,
		Label:      "Background Color",
	}
	if err := reg.Register(def); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := reg.Lookup("post", "background_color")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.Name != def.Name || got.EntityType != def.EntityType || got.Label != def.Label {
		t.Fatalf("lookup returned a different field: %+v", got)
	}
	if got.Sanitize == nil {
		t.Fatal("lookup must never return a partially-constructed field")
	}
}

func TestRegister_Duplicate(t *testing.T) {
	reg := registry.New()

	def := field.Definition{Name: "color", EntityType: "post", Kind: field.KindText}
	if err := reg.Register(def); err != nil {
		t.Fatalf("first register: %v", err)
	}

	err := reg.Register(def)
	var dup *registry.DuplicateFieldError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateFieldError, got %v", err)
	}
	if dup.EntityType != "post" || dup.Name != "color" {
		t.Fatalf("error carries wrong key: %+v", dup)
	}
}

func TestRegister_SameNameDifferentEntityType(t *testing.T) {
	reg := registry.New()

	for _, entityType := range []string{"post", "page"} {
		err := reg.Register(field.Definition{Name: "color", EntityType: entityType, Kind: field.KindText})
		if err != nil {
			t.Fatalf("register for %q: %v", entityType, err)
		}
	}
}

func TestRegister_UnknownKindFailsFast(t *testing.T) {
	reg := registry.New()

	err := reg.Register(field.Definition{Name: "x", EntityType: "post", Kind: "hologram"})
	if err == nil {
		t.Fatal("expected unknown kind to fail at registration")
	}
	if reg.Has("post", "x") {
		t.Fatal("failed registration must not leave a catalog entry")
	}
}

func TestRegister_InvalidDefinition(t *testing.T) {
	reg := registry.New()

	if err := reg.Register(field.Definition{EntityType: "post", Kind: field.KindText}); err == nil {
		t.Fatal("expected missing name to fail")
	}
	if err := reg.Register(field.Definition{Name: "x", Kind: field.KindText}); err == nil {
		t.Fatal("expected missing entity type to fail")
	}
}

func TestLookup_Unknown(t *testing.T) {
	reg := registry.New()

	_, err := reg.Lookup("post", "missing")
	var unknown *registry.UnknownFieldError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownFieldError, got %v", err)
	}
	if unknown.Name != "missing" {
		t.Fatalf("error carries wrong name: %+v", unknown)
	}
}

func TestNames(t *testing.T) {
	reg := registry.New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		reg.MustRegister(field.Definition{Name: name, EntityType: "post", Kind: field.KindText})
	}
	reg.MustRegister(field.Definition{Name: "other", EntityType: "page", Kind: field.KindText})

	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, reg.Names("post")); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if reg.Len() != 4 {
		t.Fatalf("want 4 registered fields, got %d", reg.Len())
	}
}

func TestWithKinds(t *testing.T) {
	kinds := field.NewKinds()
	if err := kinds.Register("stub", func(def field.Definition) (field.Definition, error) {
		return def, nil
	}); err != nil {
		t.Fatalf("register kind: %v", err)
	}

	reg := registry.New(registry.WithKinds(kinds))
	if err := reg.Register(field.Definition{Name: "x", EntityType: "post", Kind: "stub"}); err != nil {
		t.Fatalf("register with custom kind: %v", err)
	}
}
