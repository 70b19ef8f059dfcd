/*
Package formatter breaks styled text into lines and outputs it to devices.

Output of styled text differs in many aspects from simple string output.
Not only do we need an output device which is capable of displaying text
styles, but we need to consider line-breaking and the handling of
bi-directional (Bidi) text as well. This package helps performing the
following tasks:

▪︎ Measure runs of styled text, either in fixed-width “en”s (UAX#11) or with font metrics

▪︎ Break a styled text into lines with a first-fit algorithm over UAX#14 segments

▪︎ Estimate the height a styled text needs when set at a given width

▪︎ Format a styled paragraph of possibly bi-directional text for a console or as HTML

This package does not constitute a typesetter. Line breaking is greedy, there is no
hyphenation and no justification.

API

	text := styled.TextFromString("The quick brown fox jumps over the כלב עצלן!")
	text.Style(inline.Style{Font: font.DefaultFont.WithTraits(font.Bold)}, 4, 9)
	para, _ := styled.ParagraphFromText(text, 0, text.Len(), bidi.LeftToRight, nil)

	console := formatter.NewConsoleFixedWidthFormat(nil, nil)
	console.Print(para, nil)

	h := formatter.Height(text, 200, formatter.NewFontMeasurer(font.DefaultRegistry()))

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textengine'
func tracer() tracing.Trace {
	return tracing.Select("textengine")
}
