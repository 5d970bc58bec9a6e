// Package level shadows alpha/level with identical names and ordinals.
package level

type Level int

const (
	Low Level = iota
	High
)
