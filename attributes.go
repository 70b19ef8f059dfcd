package textengine

import (
	"image/color"

	"github.com/npillmayer/textengine/font"
	"github.com/npillmayer/textengine/styled/inline"
)

// Attributes describe one styling decision. Every field is optional; an unset
// field inherits from the base style, it never disables anything.
type Attributes struct {
	Font            *font.Descriptor // overrides the base font
	Traits          font.Traits      // bold and italic requests, resolved against the font registry
	Color           color.Color
	ParagraphStyle  *inline.ParagraphStyle
	ReplaceText     *string // literal substitute for the matched text
	ReplaceTemplate string  // substitute with submatch references, used if ReplaceText is nil
	IsUnderline     bool
	IsStrikeThrough bool
	StrikeColor     color.Color // ignored unless IsStrikeThrough
	Link            string
	HighlightColor  color.Color
	TextEffect      string
	Attachment      inline.Attachment
}

// Replace returns a pointer to s, to be used for Attributes.ReplaceText.
func Replace(s string) *string {
	return &s
}

// Bold is a shortcut for attributes requesting a bold font.
var Bold = Attributes{Traits: font.Bold}

// Italic is a shortcut for attributes requesting an italic font.
var Italic = Attributes{Traits: font.Italic}

// baseStyle is the style for text not claimed by any match.
func (e *Engine) baseStyle() inline.Style {
	return inline.Style{
		Font:      e.baseFont(),
		Color:     e.Color,
		Paragraph: e.ParagraphStyle,
	}
}

func (e *Engine) baseFont() font.Descriptor {
	if e.Font.IsVoid() {
		return font.DefaultFont
	}
	return e.Font
}

// style merges attributes over the engine's base style.
func (e *Engine) style(a Attributes) inline.Style {
	st := e.baseStyle()
	fd := st.Font
	if a.Font != nil && !a.Font.IsVoid() {
		fd = *a.Font
	}
	st.Font = e.registry.Resolve(fd, a.Traits.Has(font.Bold), a.Traits.Has(font.Italic))
	if a.Color != nil {
		st.Color = a.Color
	}
	if a.ParagraphStyle != nil {
		st.Paragraph = a.ParagraphStyle
	}
	if a.IsUnderline {
		st.Decoration |= inline.Underline
	}
	if a.IsStrikeThrough {
		st.Decoration |= inline.StrikeThrough
		st.StrikeColor = a.StrikeColor
	}
	st.Link = a.Link
	st.Highlight = a.HighlightColor
	st.Effect = a.TextEffect
	st.Attachment = a.Attachment
	return st
}
