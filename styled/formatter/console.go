package formatter

import (
	"image/color"
	"io"
	"os"

	fcolor "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/textengine/styled"
	"github.com/npillmayer/textengine/styled/inline"
	"github.com/npillmayer/uax/uax11"
)

// ControlCodes holds certain escape sequences which a terminal uses to control
// Bidi behaviour.
type ControlCodes struct {
	Preamble, Postamble []byte
	LTR, RTL            []byte
	Newline             []byte
}

// DefaultCodes is the default set of control codes.
// See https://terminal-wg.pages.freedesktop.org/bidi/recommendation/escape-sequences.html
var DefaultCodes = ControlCodes{
	Preamble:  []byte{27, '[', '8', 'l'}, // switch to explicit mode
	Postamble: []byte{},
	LTR:       []byte{27, '[', '1', ' ', 'k'},
	RTL:       []byte{27, '[', '2', ' ', 'k'},
	Newline:   []byte{'\n'},
}

// PlainCodes does not emit any Bidi control sequences.
var PlainCodes = ControlCodes{Newline: []byte{'\n'}}

// Palette maps a style to terminal colors and attributes. It returns nil for
// styles to output without any escape sequences.
type Palette func(styled.Style) *fcolor.Color

// ConsoleFixedWidth is a type for outputting formatted text to a console with
// a fixed width font.
//
// Console/Terminal output is notoriously tricky for bi-directional text and for
// scripts other than Latin. To fully appreciate the difficulties behind this,
// refer for example to
// https://terminal-wg.pages.freedesktop.org/bidi/bidi-intro/why-terminals-are-special.html
type ConsoleFixedWidth struct {
	Codes   *ControlCodes
	palette Palette
	ccnt    int // number of character positions already printed for line
	ctarget int // linelength in fixedwidth ‘en’s
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used for consoles
// with a fixed width font.
//
// codes is a table of escape sequences to control Bidi behaviour of the console.
// palette maps styles to terminal colors. If it is nil, InlinePalette is used.
func NewConsoleFixedWidthFormat(codes *ControlCodes, palette Palette) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{
		Codes:   &DefaultCodes,
		palette: palette,
	}
	if codes != nil {
		fw.Codes = codes
	}
	if palette == nil {
		fw.palette = InlinePalette
	}
	return fw
}

// Print outputs a styled paragraph to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func (fw *ConsoleFixedWidth) Print(para *styled.Paragraph, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(para, os.Stdout, config, fw)
}

// InlinePalette translates inline.Styles into terminal attributes: bold, italic,
// underline (also for links) and crossed-out text, foreground and background
// colors approximated by the nearest of the 8 standard terminal colors.
func InlinePalette(sty styled.Style) *fcolor.Color {
	st, ok := asInline(sty)
	if !ok {
		return nil
	}
	var attrs []fcolor.Attribute
	if st.IsBold() {
		attrs = append(attrs, fcolor.Bold)
	}
	if st.IsItalic() {
		attrs = append(attrs, fcolor.Italic)
	}
	if st.Decoration&inline.Underline != 0 || st.Link != "" {
		attrs = append(attrs, fcolor.Underline)
	}
	if st.Decoration&inline.StrikeThrough != 0 {
		attrs = append(attrs, fcolor.CrossedOut)
	}
	if st.Color != nil {
		attrs = append(attrs, fcolor.FgBlack+fcolor.Attribute(nearestTerminalColor(st.Color)))
	}
	if st.Highlight != nil {
		attrs = append(attrs, fcolor.BgBlack+fcolor.Attribute(nearestTerminalColor(st.Highlight)))
	}
	if len(attrs) == 0 {
		return nil
	}
	return fcolor.New(attrs...)
}

// terminalColors are the 8 standard ANSI colors, in escape code order.
var terminalColors = []colorful.Color{
	{R: 0, G: 0, B: 0},             // black
	{R: 0.8, G: 0, B: 0},           // red
	{R: 0, G: 0.8, B: 0},           // green
	{R: 0.8, G: 0.8, B: 0},         // yellow
	{R: 0, G: 0, B: 0.933},         // blue
	{R: 0.8, G: 0, B: 0.8},         // magenta
	{R: 0, G: 0.8, B: 0.8},         // cyan
	{R: 0.898, G: 0.898, B: 0.898}, // white
}

// nearestTerminalColor returns the index of the standard terminal color closest
// to c in CIE-L*a*b* space.
func nearestTerminalColor(c color.Color) int {
	cc, ok := colorful.MakeColor(c)
	if !ok { // fully transparent
		return 0
	}
	best, dist := 0, -1.0
	for i, tc := range terminalColors {
		if d := cc.DistanceLab(tc); dist < 0 || d < dist {
			best, dist = i, d
		}
	}
	return best
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item). It uses colors to visualize styles.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledText(s string, style styled.Style, w io.Writer) {
	fw.ccnt += len(s)
	if style != nil {
		if c := fw.palette(style); c != nil {
			c.Fprint(w, s)
			return
		}
	}
	w.Write([]byte(s))
}

// Preamble is called by the output driver before a paragraph of text will be formatted.
// It outputs the `Preamble` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {
	w.Write(fw.Codes.Preamble)
}

// Postamble will be called after a paragraph of text has been formatted.
// It outputs the `Postamble` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {
	w.Write(fw.Codes.Postamble)
}

// LTR signals to w that a bidi.LeftToRight sequence is to be output.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) LTR(w io.Writer) {
	w.Write(fw.Codes.LTR)
}

// RTL signals to w that a bidi.RightToLeft sequence is to be output.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) RTL(w io.Writer) {
	w.Write(fw.Codes.RTL)
}

// Line is a signal from the output driver that a new line is to be output.
// length is the total width of the characters that will be formatted, measured
// in “en”s, i.e. fixed width positions. linelength is the target line length
// to wrap long lines.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Line(length int, linelength int, w io.Writer) {
	fw.ccnt = 0
	fw.ctarget = linelength
}

// Newline will be called at the end of every formatted line of text.
// It outputs the `Newline` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	w.Write(fw.Codes.Newline)
}
