package status

import (
	"fmt"
	"reflect"
)

// Type is the built-in status vocabulary.
type Type int

// Built-in status types. Unknown is the zero value and cannot be declared.
const (
	Unknown Type = iota
	Success
	Error
	Warning
	Info
)

var typeNames = map[Type]string{
	Unknown: "Unknown",
	Success: "Success",
	Error:   "Error",
	Warning: "Warning",
	Info:    "Info",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsValid reports whether t is a declarable member of the vocabulary.
func (t Type) IsValid() bool {
	return t > Unknown && t <= Info
}

// validator is implemented by enums that can reject out-of-range values.
type validator interface {
	IsValid() bool
}

// Kind is a type-erased enum value used as the classification of a
// declaration. It keeps the concrete type so the original value can be
// recovered with KindAs.
type Kind struct {
	typ   reflect.Type
	value any
}

// NewKind boxes an enum value as a Kind. It returns ErrNotEnum when v is not
// a member of an enumerated type and ErrInvalidKind when v reports itself
// invalid through an IsValid method.
func NewKind(v any) (Kind, error) {
	typ, err := enumType(v)
	if err != nil {
		return Kind{}, err
	}
	if vv, ok := v.(validator); ok && !vv.IsValid() {
		return Kind{}, fmt.Errorf("%w: %s", ErrInvalidKind, describe(typ, v))
	}
	return Kind{typ: typ, value: v}, nil
}

// KindOf boxes a built-in Type.
func KindOf(t Type) Kind {
	return Kind{typ: reflect.TypeOf(t), value: t}
}

// KindAs recovers the concrete enum value held by k. The boolean is false
// when k holds a value of another type.
func KindAs[E any](k Kind) (E, bool) {
	e, ok := k.value.(E)
	return e, ok
}

// Value returns the boxed enum value.
func (k Kind) Value() any { return k.value }

// TypeName returns the import-path-qualified name of the boxed enum type.
func (k Kind) TypeName() string {
	if k.typ == nil {
		return ""
	}
	return qualifiedName(k.typ)
}

// Is reports whether k holds exactly v, type included.
func (k Kind) Is(v any) bool {
	if k.typ == nil || v == nil {
		return false
	}
	return reflect.TypeOf(v) == k.typ && k.value == v
}

// IsZero reports whether k is the zero Kind.
func (k Kind) IsZero() bool { return k.typ == nil }

func (k Kind) String() string {
	if k.typ == nil {
		return "<none>"
	}
	return fmt.Sprint(k.value)
}

// enumType returns the dynamic type of v when v is a member of an enumerated
// type: a defined type whose underlying type is an integer or a string.
func enumType(v any) (reflect.Type, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNotEnum)
	}
	typ := reflect.TypeOf(v)
	if typ.Name() == "" || typ.PkgPath() == "" {
		return nil, fmt.Errorf("%w: %T(%v)", ErrNotEnum, v, v)
	}
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return typ, nil
	default:
		return nil, fmt.Errorf("%w: %s has underlying kind %s", ErrNotEnum, typ, typ.Kind())
	}
}

func describe(typ reflect.Type, v any) string {
	return typ.String() + "(" + fmt.Sprint(v) + ")"
}
