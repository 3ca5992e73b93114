// Package carrier adapts submission sources to the container.Carrier
// contract. Form wraps url.Values (typically a parsed HTTP request body);
// Map serves tests and programmatic saves.
package carrier

import (
	"net/http"
	"net/url"
)

// Form reads submitted values from url.Values.
type Form struct {
	values url.Values
}

// FromValues wraps already-parsed form values.
func FromValues(values url.Values) Form {
	return Form{values: values}
}

// FromRequest parses the request form (query plus body for POST/PUT/PATCH)
// and wraps it. Parse failures yield an empty carrier; absent values are not
// errors anywhere in the pipeline.
func FromRequest(r *http.Request) Form {
	if r == nil {
		return Form{}
	}
	if err := r.ParseForm(); err != nil {
		return Form{}
	}
	return Form{values: r.Form}
}

// SubmittedValue returns the first submitted value for name, reporting
// ok=false when the key is absent.
func (f Form) SubmittedValue(name string) (string, bool) {
	if f.values == nil {
		return "", false
	}
	if _, ok := f.values[name]; !ok {
		return "", false
	}
	return f.values.Get(name), true
}

// Map is a fixed-value carrier for tests.
type Map map[string]string

// SubmittedValue implements container.Carrier.
func (m Map) SubmittedValue(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}
