package textengine

import (
	"image/color"
	"regexp"
	"strings"

	"github.com/npillmayer/textengine/detect"
	"github.com/npillmayer/textengine/font"
)

// Colors used by the markdown rules.
var (
	LinkBlue color.Color = color.RGBA{R: 0, G: 0, B: 238, A: 255}
	CodeGray color.Color = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// headingScales are font size factors for heading levels 1 to 6.
var headingScales = [...]float64{2.0, 1.5, 1.25, 1.1, 1.1, 1.1}

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})[ \t]+(.+?)[ \t]*#*[ \t]*$`)
	linkPattern    = regexp.MustCompile(`^\[([^\]\n]+)\]\(([^)\s]+)\)$`)
)

// WithMarkdown creates an engine with rules for common inline markup:
//
//	# Heading … ###### Heading      bold, larger font sizes
//	- item, * item, + item          bullet
//	***bold italic***
//	**bold**, __bold__
//	*italic*, _italic_
//	~~strike-through~~
//	`code`                          Go Mono, highlighted
//	[label](url)                    link
//
// Besides, links and phone numbers found in the text are turned into links.
// The markers of a match are removed from the output text. Markup nested
// inside another match is not recognized and keeps its markers, because the
// outer match claims the whole span: "# a **b**" becomes the heading "a **b**".
func WithMarkdown(opts ...Option) *Engine {
	e := New(opts...)
	must := func(err error) {
		if err != nil {
			panic(err) // preset rules are static
		}
	}
	must(e.AddPatternFunc(`^#{1,6}[ \t]+.+$`, e.heading, Multiline))
	must(e.AddPatternFunc(`^[ \t]*[-*+][ \t]+`, func(m, _ string) (Attributes, error) {
		return UnorderedList(strings.TrimLeft(m, " \t"), m), nil
	}, Multiline))
	must(e.AddPattern(`\*\*\*([^*\n]+?)\*\*\*`, Attributes{Traits: font.Bold | font.Italic, ReplaceTemplate: "$1"}))
	must(e.AddPattern(`\*\*([^*\n]+?)\*\*`, Attributes{Traits: font.Bold, ReplaceTemplate: "$1"}))
	must(e.AddPattern(`__([^_\n]+?)__`, Attributes{Traits: font.Bold, ReplaceTemplate: "$1"}))
	must(e.AddPattern(`\*([^\s*](?:[^*\n]*?[^\s*])?)\*`, Attributes{Traits: font.Italic, ReplaceTemplate: "$1"}))
	must(e.AddPattern(`\b_([^\s_](?:[^_\n]*?[^\s_])?)_\b`, Attributes{Traits: font.Italic, ReplaceTemplate: "$1"}))
	must(e.AddPattern(`~~([^~\n]+?)~~`, Attributes{IsStrikeThrough: true, ReplaceTemplate: "$1"}))
	must(e.AddPatternFunc("`([^`\n]+)`", e.code))
	must(e.AddPatternFunc(`\[[^\]\n]+\]\([^)\s]+\)`, link))
	must(e.AddDetector(detect.Link, func(r detect.Result, _ string) (Attributes, error) {
		return Attributes{Link: r.URL.String(), IsUnderline: true, Color: LinkBlue}, nil
	}))
	must(e.AddDetector(detect.PhoneNumber, func(r detect.Result, _ string) (Attributes, error) {
		return Attributes{Link: r.URL.String()}, nil
	}))
	return e
}

// heading scales the base font size by heading level. The base font is read
// at parse time.
func (e *Engine) heading(m, _ string) (Attributes, error) {
	sub := headingPattern.FindStringSubmatch(m)
	if sub == nil {
		return Attributes{}, nil
	}
	base := e.baseFont()
	size := base.Size
	if size <= 0 {
		size = font.DefaultSize
	}
	fd := base.WithSize(size * headingScales[len(sub[1])-1])
	return Attributes{Font: &fd, Traits: font.Bold, ReplaceText: Replace(sub[2])}, nil
}

func (e *Engine) code(m, _ string) (Attributes, error) {
	fd := font.Descriptor{Family: font.GoMono, Size: e.baseFont().Size}
	return Attributes{
		Font:           &fd,
		HighlightColor: CodeGray,
		ReplaceText:    Replace(strings.Trim(m, "`")),
	}, nil
}

func link(m, _ string) (Attributes, error) {
	sub := linkPattern.FindStringSubmatch(m)
	if sub == nil {
		return Attributes{}, nil
	}
	return Attributes{
		Link:        sub[2],
		IsUnderline: true,
		Color:       LinkBlue,
		ReplaceText: Replace(sub[1]),
	}, nil
}
