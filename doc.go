/*
Package textengine converts plain strings into styled text.

An Engine holds an ordered list of rules. Pattern rules pair a regular
expression with a styling decision, detector rules pair a semantic category
(links, dates, phone numbers) with one. Parsing a string runs all rules,
resolves overlapping matches and emits a styled.Text with runs of inline.Style.

	engine := textengine.New()
	engine.AddPattern(`\*(.+?)\*`, textengine.Attributes{
		Traits:          font.Bold,
		ReplaceTemplate: "$1",
	})
	text, err := engine.Parse("*bold* and normal")  // "bold" set in bold face

Matching

Pattern rules are run first, in registration order, then detector rules. Every
match is ranked by the registration index of its rule, detectors ranking after
all patterns. Matches are ordered by start position, equal starts by rank.
Walking this order, a match claims its span; a later match overlapping a claimed
span is truncated to its unclaimed remainder, or dropped if nothing remains.
A truncated match loses its replacement text.

A ReplaceText is substituted literally. A ReplaceTemplate of a pattern rule
is expanded for each match, `$1` denoting the first submatch and `$$` a dollar
sign.

Positions are byte offsets into the UTF-8 source.

Styling

Unset attributes of a match fall back to the engine's base style (Font, Color,
ParagraphStyle). Bold and italic requests are resolved against the font
registry; if a family has no such variant, the font is left unchanged.

WithMarkdown creates an engine with rules for common inline markup.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package textengine

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textengine'
func tracer() tracing.Trace {
	return tracing.Select("textengine")
}

// EngineError is an error type for the textengine module
type EngineError string

func (e EngineError) Error() string {
	return string(e)
}

// ErrRuleRegistration is flagged if a rule cannot be registered, e.g., for an
// invalid regular expression.
const ErrRuleRegistration = EngineError("cannot register rule")

// ErrResolver is flagged if a resolver fails to compute attributes for a match.
// Errors returned by Parse and Matches for this case are of type *ResolverError.
const ErrResolver = EngineError("resolver failed")

// ErrDetectorUnavailable is flagged when registering detector rules for
// unsupported categories.
const ErrDetectorUnavailable = EngineError("detector unavailable")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = EngineError("illegal arguments")

// ResolverError wraps an error returned by a resolver, together with the
// span of the match it failed for.
type ResolverError struct {
	Rule       int // rank of the failing rule
	Start, End int
	Err        error
}

func (e *ResolverError) Error() string {
	return fmt.Sprintf("%s: rule #%d at [%d,%d): %v", ErrResolver, e.Rule, e.Start, e.End, e.Err)
}

// Unwrap returns the resolver's error.
func (e *ResolverError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrResolver) hold.
func (e *ResolverError) Is(target error) bool {
	return target == ErrResolver
}
