package status

import (
	"fmt"
	"iter"
)

// Registry is an immutable table of declarations. It is built once by a
// Builder and may be shared by any number of goroutines.
type Registry struct {
	decls map[variantKey]Declaration
	// names indexes each key under its qualified and its short type name.
	names map[Variant][]variantKey
	order []variantKey
}

// Lookup returns the declaration for v.
// Returns ErrNotFound if v was never declared or is not an enum member.
func (r *Registry) Lookup(v any) (Declaration, error) {
	key, err := keyOf(v)
	if err != nil {
		return Declaration{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if r != nil {
		if decl, ok := r.decls[key]; ok {
			return decl, nil
		}
	}
	return Declaration{}, fmt.Errorf("%w: %s", ErrNotFound, key.variant())
}

// MustLookup is like Lookup but panics when v has no declaration.
func (r *Registry) MustLookup(v any) Declaration {
	decl, err := r.Lookup(v)
	if err != nil {
		panic(err)
	}
	return decl
}

// Find looks a declaration up by printable identity. typeName is either the
// qualified name reported by Variants or the short form "pkg.Type"; a short
// form shared by types from different packages returns ErrAmbiguous.
func (r *Registry) Find(typeName, name string) (Variant, Declaration, error) {
	v := Variant{Type: typeName, Name: name}
	var keys []variantKey
	if r != nil {
		keys = r.names[v]
	}
	switch len(keys) {
	case 0:
		return Variant{}, Declaration{}, fmt.Errorf("%w: %s", ErrNotFound, v)
	case 1:
		return keys[0].variant(), r.decls[keys[0]], nil
	default:
		return Variant{}, Declaration{}, fmt.Errorf("%w: %s matches %d types", ErrAmbiguous, v, len(keys))
	}
}

// All yields every declared variant with its declaration, in declaration order.
func (r *Registry) All() iter.Seq2[Variant, Declaration] {
	return func(yield func(Variant, Declaration) bool) {
		if r == nil {
			return
		}
		for _, key := range r.order {
			if !yield(key.variant(), r.decls[key]) {
				return
			}
		}
	}
}

// Variants returns the declared variants in declaration order.
func (r *Registry) Variants() []Variant {
	if r == nil {
		return nil
	}
	out := make([]Variant, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, key.variant())
	}
	return out
}

// Len returns the number of declared variants.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
