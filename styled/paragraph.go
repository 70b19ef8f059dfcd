package styled

import (
	"io"
	"strings"

	"github.com/npillmayer/uax/bidi"
)

// Paragraph represents a styled paragraph of text. It usually is a substring of
// a styled text, but differs from a text insofar as it may be prepared for output.
// Outputting styled text in general includes identifying runs of bidirectional
// text, which is an operation defined on paragraphs (at least by Unicode Annex #9).
// Moreover, output of styled text may include breaking up paragraphs into lines.
//
// After a styled paragraph has been created its textual content is not to change
// any more. However, it is allowed to change styles for spans of a paragraph's text.
//
// Offset is the paragraph's start position in terms of byte positions of the embedding
// text. It is held solely for a client's bookkeeping purposes.
type Paragraph struct {
	text   *Text                // a Paragraph is a styled text
	Offset uint64               // the paragraph's start position in the embedding text
	cutoff uint64               // cut off text due to line wrapping
	levels *bidi.ResolvedLevels // levels from UAX#9 algorithm
}

// ParagraphFromText creates a styled paragraph from a segment [from,to) of a
// styled text.
//
// Paragraphs may contain left-to-right text as well as right-to-left text.
// Clients should provide the overall Bidi context to apply, together with an
// optional function providing hints for Bidi runs. ParagraphFromText will apply
// the Unicode Bidi Algorithm to the paragraph's text.
func ParagraphFromText(text *Text, from, to uint64, embBidi bidi.Direction,
	m bidi.OutOfLineBidiMarkup) (*Paragraph, error) {
	//
	para := &Paragraph{Offset: from}
	if from == 0 && to == text.Len() {
		para.text = &Text{text: text.text, runs: append(runs(nil), text.runs...)}
	} else {
		var err error
		if para.text, err = Section(text, from, to); err != nil {
			return nil, err
		}
	}
	para.levels = bidi.ResolveParagraph(strings.NewReader(para.text.text), m,
		bidi.DefaultDirection(embBidi), bidi.IgnoreParagraphSeparators(true))
	return para, nil
}

// Style styles a run of text of a styled paragraph, given the start and end position.
func (para *Paragraph) Style(style Style, from, to uint64) *Paragraph {
	para.text.Style(style, from, to)
	return para
}

// Raw returns the remaining raw text of the paragraph.
func (para *Paragraph) Raw() string {
	return para.text.Raw()
}

// BidiLevels returns the resolved Bidi levels in a paragraph of text.
func (para *Paragraph) BidiLevels() *bidi.ResolvedLevels {
	return para.levels
}

// StyleAt returns the active style at text position pos, together with an
// index relative to the start of the style run.
func (para *Paragraph) StyleAt(pos uint64) (Style, uint64, error) {
	return para.text.StyleAt(pos)
}

// EachStyleRun applies a function to each run of a single style.
// pos is the text position of this run of text within the overall
// styled text, i.e., it includes para.Offset.
func (para *Paragraph) EachStyleRun(f func(content string, sty Style, pos, length uint64) error) error {
	if para.text == nil {
		return nil
	}
	return para.text.EachStyleRun(func(content string, sty Style, pos uint64) error {
		return f(content, sty, pos+para.Offset+para.cutoff, uint64(len(content)))
	})
}

// StyleRuns returns a slice of style runs for a styled text.
func (para *Paragraph) StyleRuns() []StyleChange {
	return para.text.styleRuns(para.Offset + para.cutoff)
}

// Reader returns an io.Reader for the raw text of the paragraph (without styles).
func (para *Paragraph) Reader() io.Reader {
	return strings.NewReader(para.text.Raw())
}

// WrapAt splits off a front segment (usually a “line”) from a paragraph.
// pos is relative to the start of the paragraph, not counting previous
// calls of WrapAt.
func (para *Paragraph) WrapAt(pos uint64) (*Text, *bidi.Ordering, error) {
	if pos < para.cutoff {
		return nil, nil, ErrIllegalArguments
	}
	pos -= para.cutoff
	if pos > para.text.Len() {
		return nil, nil, ErrIndexOutOfBounds
	}
	if pos == para.text.Len() {
		tracer().Debugf("Paragraph.WrapAt(EOT)")
	}
	line, rest, err := para.text.Split(pos)
	if err != nil {
		return nil, nil, err
	}
	para.text = rest
	var lineLev *bidi.ResolvedLevels
	lineLev, para.levels = para.levels.Split(pos, true)
	lineRuns := lineLev.Reorder()
	para.cutoff += line.Len()
	return line, lineRuns, nil
}
