package styled

import (
	"fmt"
	"iter"
	"strings"
)

// --- Styled Text -----------------------------------------------------------

// Text is a styled text. Its text and its styles are automatically synchronized.
// Texts with no style applied carry a single run with a nil style.
type Text struct {
	text string
	runs runs
}

// TextFromString creates a stylable text from a string.
func TextFromString(s string) *Text {
	t := &Text{text: s}
	if s != "" {
		t.runs = runs{{style: nil, length: uint64(len(s))}}
	}
	return t
}

// Raw returns the text without any styles.
func (t *Text) Raw() string {
	return t.text
}

// Len returns the length of the text in bytes.
func (t *Text) Len() uint64 {
	return uint64(len(t.text))
}

// String returns an informational string for the text and its runs. Clients must
// not rely on the format of the string.
func (t *Text) String() string {
	var b strings.Builder
	_ = t.EachStyleRun(func(content string, sty Style, pos uint64) error {
		fmt.Fprintf(&b, "%s%q", leafName(sty), content)
		return nil
	})
	return b.String()
}

// StyleAt returns the style at byte position pos of the styled text, together
// with the index of pos relative to the start of the style run.
func (t *Text) StyleAt(pos uint64) (Style, uint64, error) {
	if pos >= t.Len() {
		return nil, pos, ErrIndexOutOfBounds
	}
	start := uint64(0)
	for _, leaf := range t.runs {
		if pos < start+leaf.length {
			return leaf.style, pos - start, nil
		}
		start += leaf.length
	}
	return nil, pos, ErrIndexOutOfBounds
}

// EachStyleRun applies a function to each run of a single style.
// pos is the text position of this run of text within the overall
// styled text.
//
// This may be thought of as a “push”-interface to access style runs for a text.
// For a “pull”-interface please refer to interface `itemized.Iterator`.
func (t *Text) EachStyleRun(f func(content string, sty Style, pos uint64) error) error {
	pos := uint64(0)
	for _, leaf := range t.runs {
		if err := f(t.text[pos:pos+leaf.length], leaf.style, pos); err != nil {
			return err
		}
		pos += leaf.length
	}
	return nil
}

// RangeStyleRun iterates over the content and style of each run.
func (t *Text) RangeStyleRun() iter.Seq2[string, Style] {
	return func(yield func(string, Style) bool) {
		pos := uint64(0)
		for _, leaf := range t.runs {
			if !yield(t.text[pos:pos+leaf.length], leaf.style) {
				return
			}
			pos += leaf.length
		}
	}
}

// Style styles a run of text, given the start and end position.
// Given range boundaries will silently be restricted to valid text positions.
// The new style replaces any styles previously set for [from,to).
func (t *Text) Style(sty Style, from, to uint64) *Text {
	spn := toSpan(from, to).contained(t.Len())
	if spn.void() {
		tracer().Errorf("styled text: illegal span [%d,%d) for style, cannot style", from, to)
		return t
	}
	t.runs = t.runs.style(sty, spn)
	return t
}

// Section copies a piece of styled text, delimited by parameters from and to.
func Section(t *Text, from, to uint64) (*Text, error) {
	if from > to || to > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	section := &Text{text: t.text[from:to]}
	section.runs = t.runs.section(toSpan(from, to))
	return section, nil
}

// Split splits a text at byte position pos into two styled texts.
func (t *Text) Split(pos uint64) (*Text, *Text, error) {
	if pos > t.Len() {
		return nil, nil, ErrIndexOutOfBounds
	}
	left, _ := Section(t, 0, pos)
	right, _ := Section(t, pos, t.Len())
	return left, right, nil
}

// StyleChange holds a style and the text position where the style run starts.
type StyleChange struct {
	Style    Style
	Position uint64
	Length   uint64
}

// StyleRuns returns a slice of style runs for a styled text.
func (t *Text) StyleRuns() []StyleChange {
	return t.styleRuns(0)
}

func (t *Text) styleRuns(offset uint64) []StyleChange {
	slice := make([]StyleChange, len(t.runs))
	pos := offset
	for i, leaf := range t.runs {
		slice[i] = StyleChange{Style: leaf.style, Position: pos, Length: leaf.length}
		pos += leaf.length
	}
	return slice
}

// --- Runs of Styles --------------------------------------------------------

// Style represents a styling-format which can be applied to a run of text.
type Style interface {
	Equals(other Style) bool // does this Style look equal or differently than another one ?
	String() string          // return some kind of identifying string
}

// EqualStyles compares two styles, either of which may be nil.
func EqualStyles(a, b Style) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// runs hold the style-formats which have been applied to a text, in text order.
// The lengths of all leafs sum up to the length of the text.
type runs []styleLeaf

type styleLeaf struct {
	style  Style  // applied style
	length uint64 // length of this style run in bytes
}

func leafName(sty Style) string {
	if sty == nil {
		return "[no style]"
	}
	return "[" + sty.String() + "]"
}

// Len returns the overall length in bytes for these runs.
func (r runs) Len() uint64 {
	l := uint64(0)
	for _, leaf := range r {
		l += leaf.length
	}
	return l
}

// splitAt makes sure a run starts at pos. It returns the index of that run
// (len(r) if pos is at the end).
func (r runs) splitAt(pos uint64) (runs, int) {
	start := uint64(0)
	for i, leaf := range r {
		if pos == start {
			return r, i
		}
		if pos < start+leaf.length {
			left := styleLeaf{style: leaf.style, length: pos - start}
			right := styleLeaf{style: leaf.style, length: leaf.length - left.length}
			r = append(r[:i], append(runs{left, right}, r[i+1:]...)...)
			return r, i + 1
		}
		start += leaf.length
	}
	return r, len(r)
}

// style replaces the styles of span spn with sty.
func (r runs) style(sty Style, spn span) runs {
	r = append(runs(nil), r...)
	r, i := r.splitAt(spn.l)
	r, j := r.splitAt(spn.r)
	styled := append(runs(nil), r[:i]...)
	styled = append(styled, styleLeaf{style: sty, length: spn.len()})
	styled = append(styled, r[j:]...)
	return styled.coalesce()
}

// section copies out the runs covering span spn.
func (r runs) section(spn span) runs {
	var out runs
	start := uint64(0)
	for _, leaf := range r {
		end := start + leaf.length
		l, rr := max(start, spn.l), min(end, spn.r)
		if l < rr {
			out = append(out, styleLeaf{style: leaf.style, length: rr - l})
		}
		start = end
	}
	return out
}

// coalesce merges neighbouring runs of equal style and drops empty runs.
func (r runs) coalesce() runs {
	out := r[:0]
	for _, leaf := range r {
		if leaf.length == 0 {
			continue
		}
		if n := len(out); n > 0 && EqualStyles(out[n-1].style, leaf.style) {
			out[n-1].length += leaf.length
			continue
		}
		out = append(out, leaf)
	}
	return out
}

// --- Span ------------------------------------------------------------------

type span struct {
	l uint64
	r uint64
}

func toSpan(from, to uint64) span {
	if from > to {
		from, to = to, from
	}
	return span{from, to}
}

func (spn span) void() bool {
	return spn.r <= spn.l
}

func (spn span) len() uint64 {
	if spn.void() {
		return 0
	}
	return spn.r - spn.l
}

func (spn span) contained(length uint64) span {
	if spn.r > length {
		spn.r = length
	}
	return spn
}
