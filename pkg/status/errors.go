package status

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every declaration-time failure.
// Callers test for it with errors.Is.
var ErrConfiguration = errors.New("status configuration error")

// Declaration errors. Each wraps ErrConfiguration.
var (
	ErrNotEnum              = fmt.Errorf("%w: value is not an enum member", ErrConfiguration)
	ErrInvalidKind          = fmt.Errorf("%w: invalid status kind", ErrConfiguration)
	ErrDuplicateDeclaration = fmt.Errorf("%w: variant already declared", ErrConfiguration)
	ErrSealed               = fmt.Errorf("%w: builder already built", ErrConfiguration)
)

// ErrNotFound is returned by lookups for variants without a declaration.
var ErrNotFound = errors.New("status declaration not found")

// ErrAmbiguous is returned by Find when a short type name matches types
// from more than one package.
var ErrAmbiguous = errors.New("status variant name is ambiguous")
