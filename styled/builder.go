package styled

import (
	"strings"
)

// TextBuilder is for building styled text from style runs.
type TextBuilder struct {
	buf  strings.Builder
	runs runs
	done bool
}

// NewTextBuilder creates a new and empty builder for styled.Text.
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{}
}

// Text returns the styled text which this builder is holding up to now.
// It is illegal to continue adding fragments after `Text` has been called,
// but `Text` may be called multiple times.
func (b *TextBuilder) Text() *Text {
	b.done = true
	if b.buf.Len() == 0 {
		tracer().Debugf("text builder: text is void")
	}
	return &Text{
		text: b.buf.String(),
		runs: append(runs(nil), b.runs...),
	}
}

// Len returns the number of bytes appended so far.
func (b *TextBuilder) Len() uint64 {
	return uint64(b.buf.Len())
}

// Append appends a text fragment with a style at the end of the text to build.
// Empty fragments are ignored. A fragment with a style equal to the style of
// its predecessor extends the predecessor's run.
func (b *TextBuilder) Append(s string, style Style) error {
	if b.done {
		return ErrTextCompleted
	}
	if s == "" {
		return nil
	}
	b.buf.WriteString(s)
	if n := len(b.runs); n > 0 && EqualStyles(b.runs[n-1].style, style) {
		b.runs[n-1].length += uint64(len(s))
		return nil
	}
	b.runs = append(b.runs, styleLeaf{style: style, length: uint64(len(s))})
	return nil
}
