// Package config holds the fixed simulation parameters of spec.md §6.
// There are no config files and no environment variables: every value here
// is a compile-time constant, split into topical files the way the teacher
// repo's constants package groups its own by concern.
package config

// Board and view geometry.
const (
	BoardSize     = 100
	SightRadius   = 50
	MemoryMapSize = 101
)
