package formatter

import (
	"sync"

	"github.com/npillmayer/textengine/font"
	"github.com/npillmayer/textengine/styled"
	"github.com/npillmayer/textengine/styled/inline"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Measurer measures runs of styled text. Units are up to the implementation,
// but have to be consistent with the line width used for breaking.
type Measurer interface {
	Advance(s string, sty styled.Style) float64 // horizontal extent of s set in sty
	LineHeight(sty styled.Style) float64        // natural line height for sty
}

var setupGraphemes sync.Once

// FixedWidth measures text for output devices with fixed-width fonts, in
// “en”s. Every line has height 1.
type FixedWidth struct {
	Context *uax11.Context // if nil, uax11.LatinContext is used
}

// Advance is part of interface Measurer.
func (fw FixedWidth) Advance(s string, sty styled.Style) float64 {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	ctx := fw.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return float64(uax11.StringWidth(grapheme.StringFromString(s), ctx))
}

// LineHeight is part of interface Measurer.
func (fw FixedWidth) LineHeight(sty styled.Style) float64 {
	return 1
}

// FontMeasurer measures text with the metrics of fonts from a font registry, in
// points. Runs carrying an inline.Attachment take the attachment's bounds.
// Styles other than inline.Style are measured in font.DefaultFont.
type FontMeasurer struct {
	registry *font.Registry
}

// NewFontMeasurer creates a measurer for fonts in r. If r is nil,
// the default registry is used.
func NewFontMeasurer(r *font.Registry) *FontMeasurer {
	if r == nil {
		r = font.DefaultRegistry()
	}
	return &FontMeasurer{registry: r}
}

// Advance is part of interface Measurer.
func (fm *FontMeasurer) Advance(s string, sty styled.Style) float64 {
	st, ok := asInline(sty)
	if ok && st.Attachment != nil {
		w, _ := st.Attachment.Bounds()
		return w
	}
	return fm.registry.Advance(fontOf(st), s)
}

// LineHeight is part of interface Measurer.
func (fm *FontMeasurer) LineHeight(sty styled.Style) float64 {
	st, _ := asInline(sty)
	h := fm.registry.Metrics(fontOf(st)).Height
	if st.Attachment != nil {
		if _, ah := st.Attachment.Bounds(); ah > h {
			h = ah
		}
	}
	return h
}

func asInline(sty styled.Style) (inline.Style, bool) {
	switch st := sty.(type) {
	case inline.Style:
		return st, true
	case *inline.Style:
		if st != nil {
			return *st, true
		}
	}
	return inline.Style{}, false
}

func fontOf(st inline.Style) font.Descriptor {
	if st.Font.IsVoid() {
		return font.DefaultFont.WithTraits(st.Font.Traits)
	}
	return st.Font
}

func paragraphOf(sty styled.Style) *inline.ParagraphStyle {
	st, _ := asInline(sty)
	return st.Paragraph
}
