package styled

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/bidi"
)

func TestBasicStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := TextFromString("Hello World")
	bold := teststyle("bold")
	text.Style(bold, 6, text.Len())
	t.Logf("text=%s", text)
	if cnt := len(text.StyleRuns()); cnt != 2 {
		t.Errorf("expected formatted text to have 2 segments, has %d", cnt)
	}
	text.Style(bold, 0, 1)
	if cnt := len(text.StyleRuns()); cnt != 3 {
		t.Errorf("expected formatted text to have 3 segments, has %d", cnt)
	}
}

func TestTextSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := TextFromString("Hello World, how are you?")
	bold, italic := teststyle("bold"), teststyle("italic")
	text.Style(bold, 6, 11)
	text.Style(italic, 8, 16) // erase part of bold run
	if cnt := len(text.StyleRuns()); cnt != 4 {
		t.Errorf("expected formatted text to have 4 segments, has %d", cnt)
	}
	sty, i, err := text.StyleAt(9)
	if err != nil || !sty.Equals(italic) || i != 1 {
		t.Errorf("expected italic at position 9 (index 1), got %v, %d, %v", sty, i, err)
	}
	if _, _, err := text.StyleAt(text.Len()); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected StyleAt(len) to be out of bounds")
	}
}

func TestCoalesce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := TextFromString("abcdef")
	bold := teststyle("bold")
	text.Style(bold, 0, 2)
	text.Style(bold, 2, 4)
	runs := text.StyleRuns()
	if len(runs) != 2 || runs[0].Length != 4 {
		t.Errorf("expected neighbouring bold runs to merge, have %v", runs)
	}
	text.Style(nil, 0, 6)
	if runs = text.StyleRuns(); len(runs) != 1 || runs[0].Style != nil {
		t.Errorf("expected a single unstyled run, have %v", runs)
	}
}

func TestEach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := TextFromString("Hello World, how are you?")
	bold := teststyle("bold")
	text.Style(bold, 6, 16)
	//
	cnt := 0
	text.EachStyleRun(func(content string, sty Style, pos uint64) error {
		cnt++
		t.Logf("%v: (%s)", sty, content)
		return nil
	})
	if cnt != 3 {
		t.Errorf("expected formatted text to have 3 style runs, has %d", cnt)
	}
	cnt = 0
	for content, sty := range text.RangeStyleRun() {
		if cnt == 1 && (content != "World, how" || !sty.Equals(bold)) {
			t.Errorf("expected second run to be bold 'World, how', is %q", content)
		}
		cnt++
	}
}

func TestSection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := TextFromString("Hello World")
	text.Style(teststyle("bold"), 4, 7)
	sect, err := Section(text, 2, 9)
	if err != nil {
		t.Fatal(err)
	}
	if sect.Raw() != "llo Wor" {
		t.Errorf("unexpected section %q", sect.Raw())
	}
	runs := sect.StyleRuns()
	if len(runs) != 3 || runs[1].Position != 2 || runs[1].Length != 3 {
		t.Errorf("unexpected section runs %v", runs)
	}
	if _, err := Section(text, 5, 20); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected section beyond text to fail")
	}
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	b := NewTextBuilder()
	bold := teststyle("bold")
	b.Append("Hello ", nil)
	b.Append("", bold)
	b.Append("Wo", bold)
	b.Append("rld", bold)
	text := b.Text()
	if text.Raw() != "Hello World" {
		t.Errorf("unexpected text %q", text.Raw())
	}
	if runs := text.StyleRuns(); len(runs) != 2 || runs[1].Length != 5 {
		t.Errorf("expected 2 runs, have %v", runs)
	}
	if err := b.Append("!", nil); !errors.Is(err, ErrTextCompleted) {
		t.Errorf("expected builder to refuse fragments after completion")
	}
}

func TestParagraphWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := TextFromString("Hello World")
	text.Style(teststyle("bold"), 0, 5)
	para, err := ParagraphFromText(text, 0, text.Len(), bidi.LeftToRight, nil)
	if err != nil {
		t.Fatal(err)
	}
	line, order, err := para.WrapAt(6)
	if err != nil {
		t.Fatal(err)
	}
	if line.Raw() != "Hello " || para.Raw() != "World" {
		t.Errorf("unexpected wrap result %q | %q", line.Raw(), para.Raw())
	}
	if order == nil || len(order.Runs) == 0 {
		t.Errorf("expected bidi runs for line")
	}
	if runs := para.StyleRuns(); runs[0].Position != 6 {
		t.Errorf("expected remaining paragraph to start at 6, is %d", runs[0].Position)
	}
}

// --- Test Helpers ----------------------------------------------------------

type mystyle []string

func teststyle(sty string) mystyle {
	return mystyle{sty}
}

func (sty mystyle) Equals(other Style) bool {
	o, ok := other.(mystyle)
	if !ok || len(sty) != len(o) {
		return false
	}
	for i, s := range o {
		if s != sty[i] {
			return false
		}
	}
	return true
}

func (sty mystyle) String() string {
	return fmt.Sprintf("%v", []string(sty))
}

var _ Style = mystyle{}
