// Package status attaches a message and a classification kind to the members
// of enumerated types and retrieves them by value at runtime.
//
// An enumerated type is a defined type whose underlying type is an integer or
// a string, declared with a block of constants:
//
//	type PostStatus int
//
//	const (
//		NewRecord PostStatus = iota
//		UpdatedRecord
//	)
//
// Declarations are collected by a Builder during initialization and frozen
// into a Registry that is safe for concurrent readers:
//
//	registry := status.MustBuild(func(b *status.Builder) {
//		b.Declare(NewRecord, "New Record Created.", status.Success)
//		b.Declare(UpdatedRecord, "Registration Updated.", status.Success)
//	})
//
//	decl, err := registry.Lookup(NewRecord)
package status
