// Package pongo implements the markup.TemplateRenderer seam on top of a
// pongo2 template set. Compiled templates are cached by source, so repeated
// renders of the same field template skip recompilation.
package pongo

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-fieldbox/pkg/markup"
)

// Engine satisfies markup.TemplateRenderer using pongo2. Pongo2 escapes
// interpolated values by default, which template field kinds rely on.
type Engine struct {
	mu          sync.RWMutex
	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
	globals     pongo2.Context
}

var _ markup.TemplateRenderer = (*Engine)(nil)

// Option configures the engine before construction.
type Option func(*Engine)

// WithGlobalData seeds context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(e *Engine) {
		if len(data) == 0 {
			return
		}
		if e.globals == nil {
			e.globals = make(pongo2.Context, len(data))
		}
		for key, value := range data {
			e.globals[strings.TrimSpace(key)] = value
		}
	}
}

// New constructs an Engine applying any provided options.
func New(options ...Option) *Engine {
	engine := &Engine{
		templateSet: pongo2.NewSet("fieldbox", pongo2.MustNewLocalFileSystemLoader("")),
		templates:   make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(engine)
	}
	return engine
}

// RenderString compiles source if needed and executes it against data merged
// over the engine globals.
func (e *Engine) RenderString(source string, data map[string]any) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("pongo: engine is nil")
	}
	if strings.TrimSpace(source) == "" {
		return "", errors.New("pongo: template source is empty")
	}

	tmpl, err := e.template(source)
	if err != nil {
		return "", err
	}

	context := make(pongo2.Context, len(e.globals)+len(data))
	for key, value := range e.globals {
		context[key] = value
	}
	for key, value := range data {
		context[key] = value
	}

	rendered, err := tmpl.Execute(context)
	if err != nil {
		return "", fmt.Errorf("pongo: execute template: %w", err)
	}
	return rendered, nil
}

func (e *Engine) template(source string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[source]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[source]; ok {
		return tmpl, nil
	}

	tmpl, err := e.templateSet.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("pongo: compile template: %w", err)
	}
	e.templates[source] = tmpl
	return tmpl, nil
}
