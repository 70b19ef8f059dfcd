package itemized

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textengine/font"
	"github.com/npillmayer/textengine/styled"
	"github.com/npillmayer/textengine/styled/inline"
	"github.com/npillmayer/uax/bidi"
)

func TestIterateText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := styled.TextFromString("Hello World")
	bold := inline.Style{Font: font.DefaultFont.WithTraits(font.Bold)}
	text.Style(bold, 6, 11)
	iter := IterateText(text)
	var contents []string
	for iter.Next() {
		sty, from, to := iter.Style()
		t.Logf("%v: %d…%d = %q", sty, from, to, iter.Text())
		contents = append(contents, iter.Text())
	}
	if iter.LastError() != nil {
		t.Fatal(iter.LastError())
	}
	if len(contents) != 2 || contents[0] != "Hello " || contents[1] != "World" {
		t.Errorf("unexpected runs %q", contents)
	}
}

func TestIterateParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textengine")
	defer teardown()
	//
	text := styled.TextFromString("one two three")
	text.Style(inline.Style{Link: "x"}, 4, 7)
	para, err := styled.ParagraphFromText(text, 4, 13, bidi.LeftToRight, nil)
	if err != nil {
		t.Fatal(err)
	}
	iter := IterateParagraphText(para)
	if !iter.Next() {
		t.Fatalf("expected a first run")
	}
	if _, from, to := iter.Style(); from != 4 || to != 7 || iter.Text() != "two" {
		t.Errorf("unexpected first run %d…%d %q", from, to, iter.Text())
	}
}
