/*
Package styled makes styled text.

A styled text is a string together with runs of styles, covering the string
without gaps. Positions are byte offsets into the UTF-8 string. Styles are
opaque to this package; clients provide a type implementing interface Style
(package inline has a concrete one).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textengine'
func tracer() tracing.Trace {
	return tracing.Select("textengine")
}

// StyleError is an error type for package styled.
type StyleError string

func (e StyleError) Error() string {
	return string(e)
}

// ErrTextCompleted signals that a text builder has already completed a text and
// it's illegal to further add fragments.
const ErrTextCompleted = StyleError("forbidden to add fragments; text has been completed")

// ErrIndexOutOfBounds is flagged whenever a text position is
// greater than the length of the text.
const ErrIndexOutOfBounds = StyleError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = StyleError("illegal arguments")
