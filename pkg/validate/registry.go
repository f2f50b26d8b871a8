// Package validate rewrites fields of decoded response bodies.
//
// The payment API returns loosely typed JSON: dates and UUIDs arrive as
// strings, monetary amounts as number strings. A Registry maps
// (resource kind, field path) pairs to transforms that coerce those raw
// values into richer types before callers see them.
//
// A Registry is plain mutable state owned by whoever constructs it.
// Registration is configuration-time setup; it is not synchronized against
// concurrent Apply calls.
package validate

import "fmt"

// Kind identifies a resource namespace for validator lookup.
type Kind string

// KindAll marks an entry that applies to every resource kind.
const KindAll Kind = "*"

// Transform rewrites a single resolved value. Returning an error aborts
// the Apply call that invoked it.
type Transform func(value any) (any, error)

// Entry is one registered (kind, path, transform) rule.
type Entry struct {
	Kind      Kind
	Path      Path
	Transform Transform
}

// Registry holds validator entries in registration order per kind.
type Registry struct {
	entries map[Kind][]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Kind][]Entry)}
}

// Register adds an entry for the given kind. Use KindAll for entries that
// should run against every resource kind. Registration order is preserved
// and is the application order.
func (r *Registry) Register(kind Kind, path Path, fn Transform) {
	r.entries[kind] = append(r.entries[kind], Entry{Kind: kind, Path: path, Transform: fn})
}

// Apply runs every applicable entry against body and returns the rewritten
// body. Kind-specific entries run first, then KindAll entries, each in
// registration order.
//
// An entry whose path does not resolve (missing key, wrong container type,
// index out of range) is skipped; that is expected for optional fields and
// is not an error. An empty path replaces the whole body with the
// transform's return value.
//
// Apply makes no assumption about body's shape: search endpoints return
// lists where single-object endpoints return maps, and a whole-body
// transform is expected to detect the list case itself and loop. That
// layering wart is inherited from the wire format, not hidden here.
func (r *Registry) Apply(kind Kind, body any) (any, error) {
	var err error
	for _, entry := range r.entries[kind] {
		if body, err = applyEntry(entry, kind, body); err != nil {
			return nil, err
		}
	}
	for _, entry := range r.entries[KindAll] {
		if body, err = applyEntry(entry, kind, body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func applyEntry(entry Entry, kind Kind, body any) (any, error) {
	value, ok := entry.Path.resolve(body)
	if !ok {
		return body, nil
	}

	rewritten, err := entry.Transform(value)
	if err != nil {
		return nil, fmt.Errorf("validator for %s at %v: %w", kind, entry.Path, err)
	}

	if len(entry.Path) == 0 {
		return rewritten, nil
	}
	entry.Path.set(body, rewritten)
	return body, nil
}

// Len returns the number of entries registered for the given kind.
func (r *Registry) Len(kind Kind) int {
	return len(r.entries[kind])
}

// Clear removes all registered entries across all kinds. Used to reset
// state between test cases.
func (r *Registry) Clear() {
	r.entries = make(map[Kind][]Entry)
}
