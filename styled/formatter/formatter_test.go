package formatter

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"

	fcolor "github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textengine/font"
	"github.com/npillmayer/textengine/styled"
	"github.com/npillmayer/textengine/styled/inline"
	"github.com/npillmayer/uax/bidi"
	"github.com/npillmayer/uax/uax11"
	"pgregory.net/rapid"
)

func TestBreakLinesFirstFit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := styled.TextFromString("The quick brown fox jumps over the lazy dog!")
	rm := newRunMeasure(text.Raw(), text.StyleRuns(), FixedWidth{Context: uax11.LatinContext})
	lines := breakLines(rm, 20)
	expected := []string{"The quick brown fox ", "jumps over the lazy ", "dog!"}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i, l := range lines {
		if s := text.Raw()[l.start:l.end]; s != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], s)
		}
	}
	if lines[0].width != 19 {
		t.Errorf("expected trailing space not to count, width is %g", lines[0].width)
	}
}

func TestHeightFixedWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	m := FixedWidth{}
	for _, tc := range []struct {
		text   string
		width  float64
		height float64
	}{
		{"", 10, 0},
		{"Hello", 80, 1},
		{"one\ntwo\n\nthree", 80, 4},
		{"abcdefghij xy", 4, 2}, // over-wide segment is placed alone
		{"The quick brown fox jumps over the lazy dog!", 20, 3},
	} {
		if h := Height(styled.TextFromString(tc.text), tc.width, m); h != tc.height {
			t.Errorf("height of %q at width %g: expected %g, got %g", tc.text, tc.width, tc.height, h)
		}
	}
}

func TestHeightParagraphStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := styled.TextFromString("a\nb")
	ps := &inline.ParagraphStyle{ParagraphSpacing: 2, LineHeightMultiple: 1.5}
	text.Style(inline.Style{Paragraph: ps}, 0, text.Len())
	if h := Height(text, 80, FixedWidth{}); h != 5 {
		t.Errorf("expected 1.5 + 2 + 1.5 = 5, got %g", h)
	}
}

func TestHeightMonotonic(t *testing.T) {
	words := []string{"a", "go", "text", "engine", "styled", "runs", "x", "\n"}
	rapid.Check(t, func(t *rapid.T) {
		ws := rapid.SliceOfN(rapid.SampledFrom(words), 1, 40).Draw(t, "words")
		narrow := rapid.IntRange(1, 40).Draw(t, "narrow")
		wide := narrow + rapid.IntRange(0, 40).Draw(t, "delta")
		text := styled.TextFromString(strings.Join(ws, " "))
		hn := Height(text, float64(narrow), FixedWidth{})
		hw := Height(text, float64(wide), FixedWidth{})
		if hw > hn {
			t.Fatalf("height increased with width: %g@%d > %g@%d", hw, wide, hn, narrow)
		}
	})
}

// tallMeasurer measures one unit per rune. Fonts larger than 12pt have line
// height 3, all others 1.
type tallMeasurer struct{}

func (tallMeasurer) Advance(s string, sty styled.Style) float64 {
	return float64(utf8.RuneCountInString(s))
}

func (tallMeasurer) LineHeight(sty styled.Style) float64 {
	if st, ok := sty.(inline.Style); ok && st.Font.Size > 12 {
		return 3
	}
	return 1
}

func TestHeightMixedLineHeights(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := styled.TextFromString("aa bb TT UU cc dd")
	text.Style(inline.Style{Font: font.Descriptor{Family: font.Go, Size: 24}}, 6, 11)
	rm := newRunMeasure(text.Raw(), text.StyleRuns(), tallMeasurer{})
	if h := rm.linesHeight(breakLines(rm, 8)); h != 6 {
		t.Fatalf("expected first-fit layout at width 8 to have height 6, has %g", h)
	}
	if h := Height(text, 5, tallMeasurer{}); h != 5 {
		t.Errorf("expected height 5 at width 5, got %g", h)
	}
	if h := Height(text, 8, tallMeasurer{}); h != 5 {
		t.Errorf("expected height 5 at width 8, got %g", h)
	}
	if h := Height(text, 100, tallMeasurer{}); h != 3 {
		t.Errorf("expected a single tall line at width 100, got %g", h)
	}
}

func TestHeightMonotonicMixedSizes(t *testing.T) {
	words := []string{"a", "go", "text", "engine", "x", "\n"}
	rapid.Check(t, func(t *rapid.T) {
		ws := rapid.SliceOfN(rapid.SampledFrom(words), 1, 30).Draw(t, "words")
		text := styled.TextFromString(strings.Join(ws, " "))
		for i := rapid.IntRange(0, 4).Draw(t, "styles"); i > 0; i-- {
			from := uint64(rapid.IntRange(0, int(text.Len())).Draw(t, "from"))
			to := uint64(rapid.IntRange(int(from), int(text.Len())).Draw(t, "to"))
			size := rapid.SampledFrom([]float64{10, 24}).Draw(t, "size")
			text.Style(inline.Style{Font: font.Descriptor{Family: font.Go, Size: size}}, from, to)
		}
		narrow := rapid.IntRange(1, 40).Draw(t, "narrow")
		wide := narrow + rapid.IntRange(0, 40).Draw(t, "delta")
		hn := Height(text, float64(narrow), tallMeasurer{})
		hw := Height(text, float64(wide), tallMeasurer{})
		if hw > hn {
			t.Fatalf("height increased with width: %g@%d > %g@%d", hw, wide, hn, narrow)
		}
	})
}

func TestFontMeasurer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	fm := NewFontMeasurer(nil)
	regular := inline.Style{Font: font.DefaultFont}
	bold := inline.Style{Font: font.DefaultFont.WithTraits(font.Bold)}
	if fm.Advance("Hello", regular) <= 0 {
		t.Errorf("expected positive advance")
	}
	if fm.Advance("WWWW", bold) < fm.Advance("WWWW", regular) {
		t.Errorf("expected bold text not to be narrower than regular text")
	}
	att := inline.Style{Font: font.DefaultFont, Attachment: inline.Placeholder{Width: 30, Height: 50}}
	if w := fm.Advance("￼", att); w != 30 {
		t.Errorf("expected attachment width 30, got %g", w)
	}
	if h := fm.LineHeight(att); h != 50 {
		t.Errorf("expected attachment height 50, got %g", h)
	}
	if fm.LineHeight(nil) <= 0 {
		t.Errorf("expected unstyled text to have a line height")
	}
}

func TestHTMLOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := styled.TextFromString("Hello <World>")
	text.Style(inline.Style{Font: font.DefaultFont.WithTraits(font.Bold), Color: color.RGBA{R: 255, A: 255}}, 6, text.Len())
	para, err := styled.ParagraphFromText(text, 0, text.Len(), bidi.LeftToRight, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := NewHTML().Print(para, out, &Config{LineWidth: 80}); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	t.Logf("HTML = %s", s)
	if !strings.Contains(s, "<b>&lt;World&gt;</b>") {
		t.Errorf("expected escaped bold text in output")
	}
	if !strings.Contains(s, "color:#ff0000") {
		t.Errorf("expected color in output")
	}
	if !strings.HasPrefix(s, "<pre>") || !strings.HasSuffix(s, "</pre>\n") {
		t.Errorf("expected output to be enclosed in pre tags")
	}
}

func TestHTMLLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	for link, href := range map[string]string{
		"https://go.dev":       `href="https://go.dev"`,
		"mailto:gopher@go.dev": `href="mailto:gopher@go.dev"`,
		"tel:+15551234567":     `href="tel:+15551234567"`,
		"javascript:alert(1":   "",
		"JavaScript:alert(1)":  "",
		"data:text/html,x":     "",
	} {
		text := styled.TextFromString("x")
		text.Style(inline.Style{Link: link}, 0, 1)
		para, _ := styled.ParagraphFromText(text, 0, text.Len(), bidi.LeftToRight, nil)
		out := &bytes.Buffer{}
		if err := NewHTML().Print(para, out, &Config{LineWidth: 80}); err != nil {
			t.Fatal(err)
		}
		s := out.String()
		if href == "" && strings.Contains(s, "<a") {
			t.Errorf("expected link %q to be dropped, have %q", link, s)
		} else if href != "" && !strings.Contains(s, href) {
			t.Errorf("expected %s in output, have %q", href, s)
		}
	}
}

func TestConsoleOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	noColor := fcolor.NoColor
	fcolor.NoColor = true
	defer func() { fcolor.NoColor = noColor }()
	text := styled.TextFromString("Hello World")
	text.Style(inline.Style{Decoration: inline.Underline}, 0, 5)
	para, _ := styled.ParagraphFromText(text, 0, text.Len(), bidi.LeftToRight, nil)
	out := &bytes.Buffer{}
	console := NewConsoleFixedWidthFormat(&PlainCodes, nil)
	if err := Output(para, out, &Config{LineWidth: 80}, console); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Hello World\n" {
		t.Errorf("unexpected console output %q", out.String())
	}
}

func TestConsoleOutputRightToLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	noColor := fcolor.NoColor
	fcolor.NoColor = true
	defer func() { fcolor.NoColor = noColor }()
	text := styled.TextFromString("שלום עולם")
	para, _ := styled.ParagraphFromText(text, 0, text.Len(), bidi.LeftToRight, nil)
	out := &bytes.Buffer{}
	console := NewConsoleFixedWidthFormat(&PlainCodes, nil)
	if err := Output(para, out, &Config{LineWidth: 80}, console); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "שלום") || !strings.Contains(s, "עולם") {
		t.Errorf("expected both words in output, got %q", s)
	}
	if len(s) != len(text.Raw())+1 || !strings.HasSuffix(s, "\n") {
		t.Errorf("expected a single line of output, got %q", s)
	}
}

func TestInlinePalette(t *testing.T) {
	if InlinePalette(inline.Style{}) != nil {
		t.Errorf("expected no terminal attributes for a plain style")
	}
	if InlinePalette(inline.Style{Decoration: inline.StrikeThrough}) == nil {
		t.Errorf("expected terminal attributes for strike-through")
	}
	if i := nearestTerminalColor(color.RGBA{R: 250, G: 10, B: 10, A: 255}); i != 1 {
		t.Errorf("expected red to map to terminal color 1, got %d", i)
	}
	if i := nearestTerminalColor(color.RGBA{B: 238, A: 255}); i != 4 {
		t.Errorf("expected blue to map to terminal color 4, got %d", i)
	}
}

func TestLineWidthForTerminal(t *testing.T) {
	for w, expected := range map[int]int{100: 90, 50: 45, 20: 20, 5: 10} {
		if lw := lineWidthFor(w); lw != expected {
			t.Errorf("terminal width %d: expected line width %d, got %d", w, expected, lw)
		}
	}
}
