package cafeteria

import (
	"fmt"
	"sort"
	"strings"
)

type BeverageFunc func() Beverage

// Registry centralizes beverage creation by name. Names are matched after
// lower-casing and trimming, so "  ESPRESSO " and "espresso" are the same
// kind. Every Create call invokes the constructor again; nothing is cached.
type Registry struct {
	kinds map[string]BeverageFunc
}

func NewRegistry() *Registry {
	r := EmptyRegistry()
	r.Register("espresso", NewEspresso)
	r.Register("cappuccino", NewCappuccino)
	r.Register("latte", NewLatte)
	return r
}

func EmptyRegistry() *Registry {
	return &Registry{kinds: make(map[string]BeverageFunc)}
}

func normalizeKind(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *Registry) Register(name string, fn BeverageFunc) {
	kind := normalizeKind(name)
	if kind == "" || fn == nil {
		return
	}
	r.kinds[kind] = fn
}

func (r *Registry) Create(name string) (Beverage, error) {
	kind := normalizeKind(name)
	if kind == "" {
		return nil, &OrderError{Op: "Create", Err: fmt.Errorf("%w: empty name", ErrUnknownItem)}
	}
	fn, ok := r.kinds[kind]
	if !ok {
		return nil, &OrderError{
			Op:  "Create",
			Err: fmt.Errorf("%w: %q (valid kinds: %s)", ErrUnknownItem, name, strings.Join(r.Kinds(), ", ")),
		}
	}
	return fn(), nil
}

func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.kinds))
	for k := range r.kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
