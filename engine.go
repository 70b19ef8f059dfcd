package textengine

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"

	"github.com/npillmayer/textengine/detect"
	"github.com/npillmayer/textengine/font"
	"github.com/npillmayer/textengine/styled"
	"github.com/npillmayer/textengine/styled/formatter"
	"github.com/npillmayer/textengine/styled/inline"
)

// Engine converts strings into styled text by applying rules.
//
// The base style fields may be changed between calls of Parse. An Engine is
// not safe for concurrent use; independent engines share no mutable state.
type Engine struct {
	Font           font.Descriptor // base font; if void, font.DefaultFont
	Color          color.Color     // base color; nil for device default
	ParagraphStyle *inline.ParagraphStyle
	registry       *font.Registry
	patterns       []*PatternRule
	detectors      []*DetectorRule
}

// Option configures an engine.
type Option func(*Engine)

// WithFontRegistry sets the registry to resolve font variants from.
// The default is font.DefaultRegistry().
func WithFontRegistry(r *font.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithBaseFont sets the base font.
func WithBaseFont(d font.Descriptor) Option {
	return func(e *Engine) {
		e.Font = d
	}
}

// WithColor sets the base color.
func WithColor(c color.Color) Option {
	return func(e *Engine) {
		e.Color = c
	}
}

// WithParagraphStyle sets the base paragraph style.
func WithParagraphStyle(ps *inline.ParagraphStyle) Option {
	return func(e *Engine) {
		e.ParagraphStyle = ps
	}
}

// New creates an engine without any rules.
func New(opts ...Option) *Engine {
	e := &Engine{
		Font:     font.DefaultFont,
		registry: font.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the font registry of e.
func (e *Engine) Registry() *font.Registry {
	return e.registry
}

// --- Rules -----------------------------------------------------------------

// Flag is a compilation flag for pattern rules.
type Flag uint8

// Flags for pattern compilation. They map to the RE2 flags i, m, s and U.
const (
	CaseInsensitive Flag = 1 << iota
	Multiline
	DotMatchesNewline
	Ungreedy
)

func (f Flag) prefix() string {
	s := ""
	for i, c := range "imsU" {
		if f&(1<<i) != 0 {
			s += string(c)
		}
	}
	if s == "" {
		return ""
	}
	return "(?" + s + ")"
}

// PatternFunc computes attributes for a match of a pattern rule.
// match is the matched text, source the complete text being parsed.
type PatternFunc func(match, source string) (Attributes, error)

// DetectorFunc computes attributes for an entity found by a detector.
type DetectorFunc func(result detect.Result, source string) (Attributes, error)

// Resolver produces the attributes for a match of a pattern rule. It is either
// Fixed or Computed.
type Resolver interface {
	resolve(re *regexp.Regexp, source string, loc []int) (Attributes, error)
}

// Fixed resolves every match to the same attributes.
type Fixed Attributes

func (f Fixed) resolve(re *regexp.Regexp, source string, loc []int) (Attributes, error) {
	return expandTemplate(Attributes(f), re, source, loc), nil
}

// Computed resolves matches by calling a function.
type Computed PatternFunc

func (c Computed) resolve(re *regexp.Regexp, source string, loc []int) (Attributes, error) {
	a, err := c(source[loc[0]:loc[1]], source)
	if err != nil {
		return a, err
	}
	return expandTemplate(a, re, source, loc), nil
}

// expandTemplate sets the replacement text from a.ReplaceTemplate, expanded as
// by regexp.Regexp.Expand, unless a literal ReplaceText is present.
func expandTemplate(a Attributes, re *regexp.Regexp, source string, loc []int) Attributes {
	if a.ReplaceText == nil && a.ReplaceTemplate != "" {
		a.ReplaceText = Replace(string(re.ExpandString(nil, a.ReplaceTemplate, source, loc)))
	}
	a.ReplaceTemplate = ""
	return a
}

// PatternRule is a compiled regular expression together with a resolver.
type PatternRule struct {
	Expr     *regexp.Regexp
	Resolver Resolver
}

// DetectorRule is a detector for semantic categories together with a resolver.
type DetectorRule struct {
	Detector *detect.Detector
	Resolver DetectorFunc
}

// AddPattern registers a pattern rule with fixed attributes.
// An invalid expression is an ErrRuleRegistration.
func (e *Engine) AddPattern(expr string, a Attributes, flags ...Flag) error {
	return e.AddRule(expr, Fixed(a), flags...)
}

// AddPatternFunc registers a pattern rule with attributes computed by fn.
func (e *Engine) AddPatternFunc(expr string, fn PatternFunc, flags ...Flag) error {
	if fn == nil {
		return fmt.Errorf("%w: %w: no resolver for %q", ErrRuleRegistration, ErrIllegalArguments, expr)
	}
	return e.AddRule(expr, Computed(fn), flags...)
}

// AddRule registers a pattern rule with a resolver.
func (e *Engine) AddRule(expr string, r Resolver, flags ...Flag) error {
	if r == nil {
		return fmt.Errorf("%w: %w: no resolver for %q", ErrRuleRegistration, ErrIllegalArguments, expr)
	}
	var f Flag
	for _, fl := range flags {
		f |= fl
	}
	re, err := regexp.Compile(f.prefix() + expr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRuleRegistration, err)
	}
	e.patterns = append(e.patterns, &PatternRule{Expr: re, Resolver: r})
	tracer().Debugf("registered pattern rule #%d: %s", len(e.patterns)-1, re)
	return nil
}

// AddDetector registers a detector rule for the categories in types.
// Unsupported categories are an ErrDetectorUnavailable.
func (e *Engine) AddDetector(types detect.Type, fn DetectorFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: %w: no resolver for detector %s", ErrRuleRegistration, ErrIllegalArguments, types)
	}
	d, err := detect.New(types)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDetectorUnavailable, err)
	}
	e.detectors = append(e.detectors, &DetectorRule{Detector: d, Resolver: fn})
	tracer().Debugf("registered detector rule #%d: %s", len(e.detectors)-1, types)
	return nil
}

// --- Fonts -----------------------------------------------------------------

// BoldFont returns the bold variant of the base font.
func (e *Engine) BoldFont() font.Descriptor {
	return e.registry.Resolve(e.baseFont(), true, false)
}

// ItalicFont returns the italic variant of the base font.
func (e *Engine) ItalicFont() font.Descriptor {
	return e.registry.Resolve(e.baseFont(), false, true)
}

// BoldAndItalicFont returns the bold italic variant of the base font.
func (e *Engine) BoldAndItalicFont() font.Descriptor {
	return e.registry.Resolve(e.baseFont(), true, true)
}

// --- Helpers ---------------------------------------------------------------

// Bullet replaces list item markers.
const Bullet = "• "

// UnorderedList returns attributes which replace the first occurrence of the
// marker replace in text by a bullet.
//
//	UnorderedList("- ", "- item one")  // ReplaceText "• item one"
func UnorderedList(replace, text string) Attributes {
	if replace == "" {
		return Attributes{ReplaceText: Replace(text)}
	}
	return Attributes{ReplaceText: Replace(strings.Replace(text, replace, Bullet, 1))}
}

// SuggestedHeight estimates the height in points text needs when set at a
// given width in points, using the fonts of the default registry.
func SuggestedHeight(text *styled.Text, width float64) float64 {
	return formatter.Height(text, width, formatter.NewFontMeasurer(nil))
}

// SuggestedHeight estimates the height in points text needs when set at a
// given width in points, using the fonts of e's registry.
func (e *Engine) SuggestedHeight(text *styled.Text, width float64) float64 {
	return formatter.Height(text, width, formatter.NewFontMeasurer(e.registry))
}
