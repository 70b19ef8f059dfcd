package formatter

import (
	"fmt"
	"image/color"
	"io"
	"net/url"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/textengine/styled"
	"github.com/npillmayer/textengine/styled/inline"
	"github.com/npillmayer/uax/bidi"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML is a format for simple HTML output.
type HTML struct {
	dir  bidi.Direction
	bidi bool
}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

// Print outputs a styled paragraph as HTML.
//
// If parameter config is nil, a default configuration will be used.
// Config.Context will also be created based on heuristics
// from the user environment.
func (h *HTML) Print(para *styled.Paragraph, w io.Writer, config *Config) error {
	if config == nil {
		config = &Config{
			LineWidth: 40,
			Context:   uax11.ContextFromEnvironment(),
		}
	}
	return Output(para, w, config, h)
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item). Styles other than inline.Style are output as
// plain text.
// (Part of interface Format)
func (h *HTML) StyledText(s string, style styled.Style, w io.Writer) {
	node := &html.Node{Type: html.TextNode, Data: s}
	if st, ok := asInline(style); ok {
		node = styleNode(node, st)
	}
	if err := html.Render(w, node); err != nil {
		tracer().Errorf("HTML formatter: %v", err)
	}
}

// styleNode wraps a text node into elements for the attributes of st,
// from inside out: decorations, font traits, CSS properties, link.
func styleNode(node *html.Node, st inline.Style) *html.Node {
	wrap := func(a atom.Atom, attrs ...html.Attribute) {
		el := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
		el.AppendChild(node)
		node = el
	}
	if st.Decoration&inline.StrikeThrough != 0 {
		if st.StrikeColor != nil {
			wrap(atom.S, html.Attribute{Key: "style", Val: "text-decoration-color:" + HexColor(st.StrikeColor)})
		} else {
			wrap(atom.S)
		}
	}
	if st.Decoration&inline.Underline != 0 {
		wrap(atom.U)
	}
	if st.IsItalic() {
		wrap(atom.I)
	}
	if st.IsBold() {
		wrap(atom.B)
	}
	if css := cssProperties(st); css != "" {
		wrap(atom.Span, html.Attribute{Key: "style", Val: css})
	}
	if href, ok := safeHref(st.Link); ok {
		wrap(atom.A, html.Attribute{Key: "href", Val: href})
	} else if st.Link != "" {
		tracer().Infof("HTML output: dropping link %q", st.Link)
	}
	return node
}

// linkSchemes are the URL schemes emitted as hyperlinks. Links without a
// scheme are relative references.
var linkSchemes = map[string]bool{"": true, "http": true, "https": true, "mailto": true, "tel": true}

func safeHref(link string) (string, bool) {
	if link == "" {
		return "", false
	}
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || !linkSchemes[strings.ToLower(u.Scheme)] {
		return "", false
	}
	return u.String(), true
}

func cssProperties(st inline.Style) string {
	var props []string
	if !st.Font.IsVoid() {
		props = append(props, fmt.Sprintf("font-family:'%s'", st.Font.Family))
		if st.Font.Size > 0 {
			props = append(props, fmt.Sprintf("font-size:%gpt", st.Font.Size))
		}
	}
	if st.Color != nil {
		props = append(props, "color:"+HexColor(st.Color))
	}
	if st.Highlight != nil {
		props = append(props, "background-color:"+HexColor(st.Highlight))
	}
	return strings.Join(props, ";")
}

// HexColor returns c as a CSS hex color "#rrggbb".
func HexColor(c color.Color) string {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return "transparent"
	}
	return cc.Hex()
}

// Preamble is called by the output driver before a paragraph of text will be formatted.
// It outputs the a `pre` tag.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {
	w.Write([]byte("<pre>\n"))
}

// Postamble will be called after a paragraph of text has been formatted.
// It outputs a closing `</span>` if necessary, and a closing `</pre>` tag.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	if h.bidi {
		w.Write([]byte("</span>"))
		h.bidi = false
	}
	w.Write([]byte("\n</pre>\n"))
}

// LTR signals to w that a bidi.LeftToRight sequence is to be output.
// It outputs a closing `</span>` if necessary, and a `<span dir="ltr">` tag.
// (Part of interface Format)
func (h *HTML) LTR(w io.Writer) {
	h.direction(bidi.LeftToRight, w)
}

// RTL signals to w that a bidi.RightToLeft sequence is to be output.
// It outputs a closing `</span>` if necessary, and a `<span dir="rtl">` tag.
// (Part of interface Format)
func (h *HTML) RTL(w io.Writer) {
	h.direction(bidi.RightToLeft, w)
}

func (h *HTML) direction(dir bidi.Direction, w io.Writer) {
	if h.bidi {
		w.Write([]byte("</span>"))
	}
	if dir == bidi.RightToLeft {
		w.Write([]byte(`<span dir="rtl">`))
	} else {
		w.Write([]byte(`<span dir="ltr">`))
	}
	h.dir, h.bidi = dir, true
}

// Line is a signal from the output driver that a new line is to be output.
//
// Currently does nothing.
// (Part of interface Format)
func (h *HTML) Line(length int, linelength int, w io.Writer) {
}

// Newline will be called at the end of every formatted line of text.
// It outputs a `<br>` tag.
// (Part of interface Format)
func (h *HTML) Newline(w io.Writer) {
	if h.bidi {
		w.Write([]byte("</span>"))
		h.bidi = false
	}
	w.Write([]byte("<br>\n"))
}
