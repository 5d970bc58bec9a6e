// Package level is one of two packages that share a package name and a type
// name, used to check that registries keep them apart.
package level

// Level is an enum whose printed type name is level.Level.
type Level int

const (
	Low Level = iota
	High
)
