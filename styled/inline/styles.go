package inline

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/textengine/font"
	"github.com/npillmayer/textengine/styled"
)

// Decoration is a set of line decorations for a run of text.
type Decoration uint8

// Line decorations
const (
	Underline Decoration = 1 << iota
	StrikeThrough
)

func (d Decoration) String() string {
	var s []string
	if d&Underline != 0 {
		s = append(s, "underline")
	}
	if d&StrikeThrough != 0 {
		s = append(s, "strike")
	}
	return strings.Join(s, "+")
}

// Alignment is the horizontal alignment of lines within a paragraph.
type Alignment uint8

// Alignments for paragraphs
const (
	AlignNatural Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustified
)

// ParagraphStyle holds layout attributes of paragraphs. Lengths are in points.
type ParagraphStyle struct {
	Alignment           Alignment
	LineSpacing         float64 // added between lines
	ParagraphSpacing    float64 // added after a paragraph
	LineHeightMultiple  float64 // factor for natural line height; 0 means 1
	HeadIndent          float64 // indent of lines other than the first
	FirstLineHeadIndent float64
	TailIndent          float64 // indent from the trailing edge
}

// LineHeight applies the paragraph's line height multiple and spacing to a
// natural line height. It is safe to call on a nil ParagraphStyle.
func (ps *ParagraphStyle) LineHeight(h float64) float64 {
	if ps == nil {
		return h
	}
	if ps.LineHeightMultiple > 0 {
		h *= ps.LineHeightMultiple
	}
	return h + ps.LineSpacing
}

// Indents returns the horizontal space taken from a line by indents.
func (ps *ParagraphStyle) Indents(firstLine bool) float64 {
	if ps == nil {
		return 0
	}
	ind := ps.HeadIndent
	if firstLine {
		ind = ps.FirstLineHeadIndent
	}
	return ind + ps.TailIndent
}

// Spacing returns the paragraph spacing, 0 for nil.
func (ps *ParagraphStyle) Spacing() float64 {
	if ps == nil {
		return 0
	}
	return ps.ParagraphSpacing
}

// Attachment is an inline object embedded into a text, e.g. an image.
type Attachment interface {
	Bounds() (width, height float64)
}

// Placeholder is an attachment with fixed bounds and no content.
type Placeholder struct {
	Width, Height float64
}

// Bounds is part of interface Attachment.
func (p Placeholder) Bounds() (float64, float64) {
	return p.Width, p.Height
}

// Style is a resolved text style, applicable on runs of characters.
// Color fields are nil if the run uses the device default.
type Style struct {
	Font        font.Descriptor
	Color       color.Color
	Paragraph   *ParagraphStyle
	Decoration  Decoration
	StrikeColor color.Color // used only with StrikeThrough
	Link        string
	Highlight   color.Color
	Effect      string
	Attachment  Attachment
}

var _ styled.Style = Style{}

// Equals is part of interface styled.Style.
func (s Style) Equals(other styled.Style) bool {
	o, ok := other.(Style)
	if !ok {
		if p, isPtr := other.(*Style); isPtr && p != nil {
			o = *p
		} else {
			return false
		}
	}
	return s.Font == o.Font &&
		sameColor(s.Color, o.Color) &&
		sameParagraph(s.Paragraph, o.Paragraph) &&
		s.Decoration == o.Decoration &&
		(s.Decoration&StrikeThrough == 0 || sameColor(s.StrikeColor, o.StrikeColor)) &&
		s.Link == o.Link &&
		sameColor(s.Highlight, o.Highlight) &&
		s.Effect == o.Effect &&
		sameAttachment(s.Attachment, o.Attachment)
}

func (s Style) IsBold() bool {
	return s.Font.Traits.Has(font.Bold)
}

func (s Style) IsItalic() bool {
	return s.Font.Traits.Has(font.Italic)
}

func (s Style) String() string {
	var b strings.Builder
	b.WriteString(s.Font.String())
	if s.Color != nil {
		fmt.Fprintf(&b, " color=%s", colorString(s.Color))
	}
	if s.Decoration != 0 {
		b.WriteString(" " + s.Decoration.String())
	}
	if s.Highlight != nil {
		fmt.Fprintf(&b, " highlight=%s", colorString(s.Highlight))
	}
	if s.Link != "" {
		fmt.Fprintf(&b, " link=%s", s.Link)
	}
	if s.Effect != "" {
		fmt.Fprintf(&b, " effect=%s", s.Effect)
	}
	if s.Attachment != nil {
		w, h := s.Attachment.Bounds()
		fmt.Fprintf(&b, " attachment=%gx%g", w, h)
	}
	return b.String()
}

// sameAttachment reports whether neither style carries an attachment. Every
// attachment occupies a run of its own, so styles with attachments never equal.
func sameAttachment(a, b Attachment) bool {
	return a == nil && b == nil
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func sameParagraph(a, b *ParagraphStyle) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func colorString(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
