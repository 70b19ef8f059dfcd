/*
Package detect finds semantic entities in plain text: links, dates and
phone numbers.

Clients select categories with a bitmask of Types. Categories which are
known but not supported by this package (addresses, transit information)
are flagged when creating a detector, never while scanning text.

All positions are byte offsets into the UTF-8 text.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package detect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textengine'
func tracer() tracing.Trace {
	return tracing.Select("textengine")
}

// DetectError is an error type for package detect.
type DetectError string

func (e DetectError) Error() string {
	return string(e)
}

// ErrUnavailable is flagged if a requested detector category is not supported.
const ErrUnavailable = DetectError("detector category unavailable")
