/*
Package font resolves font descriptors to concrete font variants.

A Descriptor names a font family, a point size and a set of traits (bold,
italic). A Registry holds the TrueType data of the named variants of a
family. Resolving a descriptor for additional traits will look up the
variant with the combined traits, and degrade to the unmodified descriptor
if no such variant has been registered.

The default registry carries the Go font families ("Go" and "Go Mono") with
all four variants each.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textengine'
func tracer() tracing.Trace {
	return tracing.Select("textengine")
}

// FontError is an error type for the font package.
type FontError string

func (e FontError) Error() string {
	return string(e)
}

// ErrFontData is flagged if TrueType data cannot be parsed.
const ErrFontData = FontError("cannot parse font data")

// ErrUnknownFont is flagged if neither a descriptor nor its family's regular
// variant is registered.
const ErrUnknownFont = FontError("unknown font")
