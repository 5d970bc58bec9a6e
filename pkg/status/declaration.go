package status

import (
	"errors"
	"fmt"
	"reflect"
)

// Declaration is the message and kind attached to one enum variant.
type Declaration struct {
	Message string
	Kind    Kind
}

// Variant is the printable identity of an enum member: its package-qualified
// type name (import path, dot, type name) and its name (the String method when
// present, else the literal value).
type Variant struct {
	Type string
	Name string
}

func (v Variant) String() string {
	return v.Type + "." + v.Name
}

// variantKey addresses a declaration by owning type and discriminant.
type variantKey struct {
	typ   reflect.Type
	value any
}

func (k variantKey) variant() Variant {
	return Variant{Type: qualifiedName(k.typ), Name: fmt.Sprint(k.value)}
}

// qualifiedName is typ's import path and name, unique across packages that
// share a package name.
func qualifiedName(typ reflect.Type) string {
	return typ.PkgPath() + "." + typ.Name()
}

// keyOf derives the table key for v. Declaration and lookup both go through
// it so the two never disagree on key format.
func keyOf(v any) (variantKey, error) {
	typ, err := enumType(v)
	if err != nil {
		return variantKey{}, err
	}
	return variantKey{typ: typ, value: v}, nil
}

// VariantOf returns the printable identity of v. It returns ErrNotEnum when v
// is not an enum member.
func VariantOf(v any) (Variant, error) {
	key, err := keyOf(v)
	if err != nil {
		return Variant{}, err
	}
	return key.variant(), nil
}

// Builder collects declarations during initialization. It is not safe for
// concurrent use; build the Registry before sharing it.
type Builder struct {
	decls  map[variantKey]Declaration
	order  []variantKey
	errs   []error
	sealed bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{decls: make(map[variantKey]Declaration)}
}

// Declare attaches message and a built-in status type to variant.
// Returns an error wrapping ErrConfiguration if variant is not an enum member,
// t is not a valid Type, or variant was already declared.
func (b *Builder) Declare(variant any, message string, t Type) error {
	if !t.IsValid() {
		return b.fail(fmt.Errorf("%w: %s for %v", ErrInvalidKind, t, variant))
	}
	return b.declare(variant, message, KindOf(t))
}

// DeclareKind attaches message and a caller-defined enum kind to variant.
// The kind goes through the same enum-member check as the variant.
func (b *Builder) DeclareKind(variant any, message string, kind any) error {
	k, err := NewKind(kind)
	if err != nil {
		return b.fail(fmt.Errorf("declare %v: %w", variant, err))
	}
	return b.declare(variant, message, k)
}

func (b *Builder) declare(variant any, message string, kind Kind) error {
	if b.sealed {
		return fmt.Errorf("declare %v: %w", variant, ErrSealed)
	}
	key, err := keyOf(variant)
	if err != nil {
		return b.fail(fmt.Errorf("declare variant: %w", err))
	}
	if _, exists := b.decls[key]; exists {
		return b.fail(fmt.Errorf("%w: %s", ErrDuplicateDeclaration, key.variant()))
	}
	b.decls[key] = Declaration{Message: message, Kind: kind}
	b.order = append(b.order, key)
	return nil
}

func (b *Builder) fail(err error) error {
	b.errs = append(b.errs, err)
	return err
}

// Build freezes the declarations into a Registry and seals the builder.
// When earlier declarations failed, Build returns their joined errors together
// with a registry of the declarations that succeeded; callers that must fail
// fast check the error first.
func (b *Builder) Build() (*Registry, error) {
	if b.sealed {
		return nil, ErrSealed
	}
	b.sealed = true

	r := &Registry{
		decls: make(map[variantKey]Declaration, len(b.decls)),
		names: make(map[Variant][]variantKey, 2*len(b.decls)),
		order: make([]variantKey, 0, len(b.order)),
	}
	for _, key := range b.order {
		r.decls[key] = b.decls[key]
		r.order = append(r.order, key)

		v := key.variant()
		short := Variant{Type: key.typ.String(), Name: v.Name}
		r.names[v] = append(r.names[v], key)
		r.names[short] = append(r.names[short], key)
	}
	return r, errors.Join(b.errs...)
}

// MustBuild runs fn against a new Builder and returns the built Registry.
// It panics on any declaration error; use it for package-level registries.
func MustBuild(fn func(b *Builder)) *Registry {
	b := NewBuilder()
	fn(b)
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}
