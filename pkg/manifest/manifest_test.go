package manifest_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-fieldbox/pkg/manifest"
	"github.com/goliatone/go-fieldbox/pkg/registry"
)

const postManifest = `
entity_type: post
fields:
  - name: background_color
    kind: text
    label: Background Color
    placeholder: "#ffffff"
  - name: layout
    kind: select
    label: Layout
    choices:
      - value: single
        label: Single column
      - value: split
        label: Two columns
  - name: rating
    kind: number
    label: Rating
    min: 0
    max: 5
`

func TestLoad(t *testing.T) {
	reg := registry.New()
	if err := manifest.Load([]byte(postManifest), reg); err != nil {
		t.Fatalf("load: %v", err)
	}

	def, err := reg.Lookup("post", "layout")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(def.Choices) != 2 || def.Choices[1].Label != "Two columns" {
		t.Fatalf("choices not carried over: %+v", def.Choices)
	}

	rating, err := reg.Lookup("post", "rating")
	if err != nil {
		t.Fatalf("lookup rating: %v", err)
	}
	if rating.Sanitize == nil {
		t.Fatal("number kind factory did not run")
	}
	if got := rating.Sanitize("9"); got != "5" {
		t.Fatalf("manifest bounds not applied, got %q", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{name: "missing entity type", doc: "fields:\n  - name: a\n    kind: text\n"},
		{name: "no fields", doc: "entity_type: post\n"},
		{name: "not yaml", doc: "::\n\t-"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := manifest.Parse([]byte(tc.doc)); err == nil {
				t.Fatal("expected parse to fail")
			}
		})
	}
}

func TestLoad_UnknownKind(t *testing.T) {
	reg := registry.New()
	doc := "entity_type: post\nfields:\n  - name: x\n    kind: hologram\n"
	err := manifest.Load([]byte(doc), reg)
	if err == nil {
		t.Fatal("expected unknown kind to fail")
	}
	if !strings.Contains(err.Error(), "hologram") {
		t.Fatalf("error should name the kind: %v", err)
	}
}

func TestLoad_DuplicateField(t *testing.T) {
	reg := registry.New()
	if err := manifest.Load([]byte(postManifest), reg); err != nil {
		t.Fatalf("first load: %v", err)
	}

	err := manifest.Load([]byte(postManifest), reg)
	var dup *registry.DuplicateFieldError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateFieldError, got %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"fields/post.yaml": &fstest.MapFile{Data: []byte(postManifest)},
		"fields/page.yml": &fstest.MapFile{Data: []byte(
			"entity_type: page\nfields:\n  - name: hero\n    kind: text\n")},
		"README.md": &fstest.MapFile{Data: []byte("ignored")},
	}

	reg := registry.New()
	if err := manifest.LoadFS(fsys, reg); err != nil {
		t.Fatalf("load fs: %v", err)
	}

	if !reg.Has("post", "background_color") || !reg.Has("page", "hero") {
		t.Fatal("manifests not applied from fs")
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	if err := manifest.LoadFS(nil, registry.New()); err != nil {
		t.Fatalf("nil fs must be a no-op: %v", err)
	}
}
