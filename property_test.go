package textengine

import (
	"strings"
	"testing"

	"github.com/npillmayer/textengine/font"
	"github.com/npillmayer/textengine/styled"
	"pgregory.net/rapid"
)

func markupSource() *rapid.Generator[string] {
	return rapid.StringOfN(rapid.SampledFrom([]rune("ab *_~#-[]()`\nä日")), 0, 60, -1)
}

func TestPropertyEmptyRulesKeepSource(t *testing.T) {
	e := New()
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.String().Draw(t, "source")
		text, err := e.Parse(source)
		if err != nil {
			t.Fatal(err)
		}
		if text.Raw() != source {
			t.Fatalf("expected %q, have %q", source, text.Raw())
		}
		runs := text.StyleRuns()
		if source != "" && (len(runs) != 1 || !runs[0].Style.Equals(e.baseStyle())) {
			t.Fatalf("expected a single run in base style, have %v", runs)
		}
	})
}

func TestPropertyNoReplacementReconstructsSource(t *testing.T) {
	e := New()
	e.AddPattern(`a+`, Bold)
	e.AddPattern(`[ab]{2}`, Italic)
	e.AddPattern(`\*[^*]*\*`, Attributes{IsUnderline: true})
	rapid.Check(t, func(t *rapid.T) {
		source := markupSource().Draw(t, "source")
		text, err := e.Parse(source)
		if err != nil {
			t.Fatal(err)
		}
		if text.Raw() != source {
			t.Fatalf("expected %q, have %q", source, text.Raw())
		}
	})
}

func TestPropertyMatchesDoNotOverlap(t *testing.T) {
	e := WithMarkdown()
	rapid.Check(t, func(t *rapid.T) {
		source := markupSource().Draw(t, "source")
		matches, err := e.Matches(source)
		if err != nil {
			t.Fatal(err)
		}
		end := 0
		for _, m := range matches {
			if m.Start < end || m.Start >= m.End || m.End > len(source) {
				t.Fatalf("invalid match sequence %+v for %q", matches, source)
			}
			end = m.End
		}
	})
}

func TestPropertyParseIsDeterministic(t *testing.T) {
	e := WithMarkdown()
	rapid.Check(t, func(t *rapid.T) {
		source := markupSource().Draw(t, "source")
		t1, err1 := e.Parse(source)
		t2, err2 := e.Parse(source)
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors %v, %v", err1, err2)
		}
		r1, r2 := t1.StyleRuns(), t2.StyleRuns()
		if t1.Raw() != t2.Raw() || len(r1) != len(r2) {
			t.Fatalf("parse results differ for %q", source)
		}
		for i := range r1 {
			if r1[i].Position != r2[i].Position || !styled.EqualStyles(r1[i].Style, r2[i].Style) {
				t.Fatalf("run %d differs for %q", i, source)
			}
		}
	})
}

func TestPropertyResolveIsIdempotent(t *testing.T) {
	r := font.DefaultRegistry()
	rapid.Check(t, func(t *rapid.T) {
		base := font.Descriptor{
			Family: rapid.SampledFrom([]string{font.Go, font.GoMono, "Unknown"}).Draw(t, "family"),
			Size:   float64(rapid.IntRange(0, 72).Draw(t, "size")),
			Traits: font.Traits(rapid.IntRange(0, 3).Draw(t, "traits")),
		}
		bold, italic := rapid.Bool().Draw(t, "bold"), rapid.Bool().Draw(t, "italic")
		once := r.Resolve(base, bold, italic)
		if twice := r.Resolve(once, bold, italic); twice != once {
			t.Fatalf("resolve not idempotent: %s -> %s -> %s", base, once, twice)
		}
	})
}

func TestPropertyHeightMonotonic(t *testing.T) {
	e := WithMarkdown()
	big := font.Descriptor{Family: font.Go, Size: 30}
	if err := e.AddPattern(`\bBIG\b`, Attributes{Font: &big}); err != nil {
		t.Fatal(err)
	}
	tokens := []string{"word", "longerword", "x", "a\nb", "BIG", "**bold**", "`code`", "\n# Heading\n", "\n### Sub\n"}
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.SampledFrom(tokens), 1, 30).Draw(t, "words")
		source := strings.Join(words, " ")
		text, err := e.Parse(source)
		if err != nil {
			t.Fatal(err)
		}
		narrow := float64(rapid.IntRange(10, 400).Draw(t, "narrow"))
		wide := narrow + float64(rapid.IntRange(0, 400).Draw(t, "delta"))
		if hw, hn := e.SuggestedHeight(text, wide), e.SuggestedHeight(text, narrow); hw > hn {
			t.Fatalf("height increased with width for %q: %g > %g", source, hw, hn)
		}
	})
}
