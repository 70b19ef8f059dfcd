package formatter

import (
	"bufio"
	"math"
	"strings"

	"github.com/npillmayer/textengine/styled"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// line is a line of text found by the line breaker. Positions are relative to
// the start of the broken text.
type line struct {
	start, end uint64
	width      float64 // width without trailing white space
	height     float64 // line height including paragraph line spacing
	hard       bool    // line ends with a mandatory break
	need       float64 // least line width keeping this line unbroken, -Inf for a single fragment
}

// runMeasure measures spans of a text, given its style runs.
type runMeasure struct {
	raw  string
	runs []styled.StyleChange // positions relative to raw
	m    Measurer
}

func newRunMeasure(raw string, runs []styled.StyleChange, m Measurer) *runMeasure {
	rm := &runMeasure{raw: raw, m: m}
	if len(runs) > 0 {
		offset := runs[0].Position
		rm.runs = make([]styled.StyleChange, len(runs))
		for i, r := range runs {
			r.Position -= offset
			rm.runs[i] = r
		}
	}
	return rm
}

// width returns the advance of [from,to), summed over style runs.
func (rm *runMeasure) width(from, to uint64) float64 {
	w := 0.0
	rm.each(from, to, func(from, to uint64, sty styled.Style) {
		w += rm.m.Advance(rm.raw[from:to], sty)
	})
	return w
}

// height returns the maximum line height of styles in [from,to).
func (rm *runMeasure) height(from, to uint64) float64 {
	h := 0.0
	rm.each(from, to, func(_, _ uint64, sty styled.Style) {
		if lh := paragraphOf(sty).LineHeight(rm.m.LineHeight(sty)); lh > h {
			h = lh
		}
	})
	return h
}

func (rm *runMeasure) styleAt(pos uint64) styled.Style {
	for _, r := range rm.runs {
		if pos < r.Position+r.Length {
			return r.Style
		}
	}
	return nil
}

func (rm *runMeasure) each(from, to uint64, f func(from, to uint64, sty styled.Style)) {
	for _, r := range rm.runs {
		l, rr := max(from, r.Position), min(to, r.Position+r.Length)
		if l < rr {
			f(l, rr, r.Style)
		}
	}
}

const newlines = "\r\n\v\f\u0085\u2028\u2029"

// fragment is a UAX#14 segment of text together with its measures.
type fragment struct {
	start, end uint64  // including trailing newlines
	visible    float64 // width without trailing white space and newlines
	content    float64 // width without trailing newlines
	blank      bool    // no visible content
	hard       bool    // ends with a mandatory break
}

func fragmentsOf(rm *runMeasure) []fragment {
	var frags []fragment
	if rm.raw == "" {
		return frags
	}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(rm.raw)))
	pos := uint64(0)
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		end := pos + uint64(len(frag))
		content := strings.TrimRight(frag, newlines)
		visible := strings.TrimRight(content, " \t")
		frags = append(frags, fragment{
			start:   pos,
			end:     end,
			visible: rm.width(pos, pos+uint64(len(visible))),
			content: rm.width(pos, pos+uint64(len(content))),
			blank:   visible == "",
			hard:    len(content) < len(frag),
		})
		pos = end
	}
	return frags
}

/*
breakLines is a first-fit line breaker:

	1. |  SpaceLeft := LineWidth
	2. |  for each Segment in Text
	3. |      if Width(Segment without trailing space) > SpaceLeft and line is not empty
	4. |           insert line break before Segment in Text
	5. |           SpaceLeft := LineWidth - Width(Segment)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - Width(Segment)
	8. |      if Segment ends in a newline, insert a mandatory break after it

Segments are UAX#14 line break opportunities. A segment wider than a line is
put on a line of its own. The available width of a line is reduced by the
indents of the paragraph style at the start of the line.
*/
func breakLines(rm *runMeasure, width float64) []line {
	return layout(rm, fragmentsOf(rm), width)
}

func layout(rm *runMeasure, frags []fragment, width float64) []line {
	var lines []line
	cur := line{need: math.Inf(-1)}
	empty, first := true, true
	indent := func() float64 {
		return paragraphOf(rm.styleAt(cur.start)).Indents(first)
	}
	linewidth := 0.0 // including trailing white space
	closeLine := func(end uint64, hard bool) {
		cur.end, cur.hard = end, hard
		cur.height = rm.height(cur.start, cur.end)
		tracer().Debugf("break @ %d (width %.2f, height %.2f, hard=%v)", end, cur.width, cur.height, hard)
		lines = append(lines, cur)
		cur = line{start: end, need: math.Inf(-1)}
		linewidth, empty, first = 0, true, hard
	}
	for _, f := range frags {
		if !empty {
			if linewidth+f.visible > width-indent() {
				closeLine(f.start, false)
			} else {
				cur.need = max(cur.need, linewidth+f.visible+indent())
			}
		}
		if !f.blank {
			cur.width = linewidth + f.visible
		}
		linewidth += f.content
		empty = false
		if f.hard {
			closeLine(f.end, true)
		}
	}
	if !empty {
		closeLine(frags[len(frags)-1].end, false)
	}
	return lines
}

// linesHeight sums up the heights of lines. After every mandatory break, except
// for the last line, the paragraph spacing of the broken line's style is added.
func (rm *runMeasure) linesHeight(lines []line) float64 {
	h := 0.0
	for i, l := range lines {
		h += l.height
		if l.hard && i < len(lines)-1 {
			h += paragraphOf(rm.styleAt(l.start)).Spacing()
		}
	}
	return h
}

// Height estimates the height text needs when set into a box of a given
// width. Measures are taken by m, width is in m's units.
// Each line contributes the maximum line height of its styles. After every
// mandatory break, except for the last line, the paragraph spacing of the
// broken line's style is added.
//
// With lines of differing heights, a wider first-fit layout may be higher
// than a narrower one. A box holds every layout of a narrower width, therefore
// Height is the least height of the first-fit layouts at width or below.
// Height does not increase when width increases.
func Height(text *styled.Text, width float64, m Measurer) float64 {
	if text == nil || m == nil {
		return 0
	}
	rm := newRunMeasure(text.Raw(), text.StyleRuns(), m)
	frags := fragmentsOf(rm)
	h, n := math.Inf(1), 0
	for w := width; ; n++ {
		lines := layout(rm, frags, w)
		h = min(h, rm.linesHeight(lines))
		need := math.Inf(-1)
		for _, l := range lines {
			need = max(need, l.need)
		}
		if math.IsInf(need, -1) {
			break // no line can be broken any further
		}
		// layouts are equal for all widths in [need,w]
		w = math.Nextafter(min(need, w), math.Inf(-1))
	}
	tracer().Debugf("height of text at width %.2f = %.2f (%d layouts)", width, h, n+1)
	return h
}
