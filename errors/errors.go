// Package errors defines all exported error sentinels for the specdoc library.
//
// This is the single source of truth for error values. Both the top-level
// specdoc package and its subpackages import from here, ensuring errors.Is
// checks work across package boundaries.
package errors

import "errors"

// Reorder errors
var (
	ErrInvalidWidth = errors.New("specdoc: hash width must be 32 or 64")
)

// Vocabulary errors
var (
	ErrBadTriple   = errors.New("specdoc: malformed N-Triples statement")
	ErrEmptyVocab  = errors.New("specdoc: vocabulary contains no terms")
	ErrUnknownTerm = errors.New("specdoc: overrides entry names a term not in the vocabulary")
)

// Rendering errors
var (
	ErrNoTemplate = errors.New("specdoc: no template for requested page kind")
)

// Generator errors
var (
	ErrGeneratorClosed = errors.New("specdoc: generator is closed")
)
