package textengine

import (
	"github.com/npillmayer/textengine/styled"
)

// Parse converts source into styled text. Text not claimed by any rule is set
// in the base style. If any resolver fails, Parse returns a *ResolverError
// and no text.
func (e *Engine) Parse(source string) (*styled.Text, error) {
	matches, err := e.Matches(source)
	if err != nil {
		tracer().Errorf("parse: %v", err)
		return nil, err
	}
	return e.build(source, matches), nil
}

// build emits the gaps between matches in the base style, and every match,
// or its replacement text, in the match's style.
// Neighbouring runs of equal style are merged.
func (e *Engine) build(source string, matches []Match) *styled.Text {
	b := styled.NewTextBuilder()
	base := e.baseStyle()
	pos := 0
	for _, m := range matches {
		b.Append(source[pos:m.Start], base)
		s := source[m.Start:m.End]
		if m.Attributes.ReplaceText != nil {
			s = *m.Attributes.ReplaceText
		}
		b.Append(s, e.style(m.Attributes))
		pos = m.End
	}
	b.Append(source[pos:], base)
	return b.Text()
}
