package formatter

import (
	"io"
	"os"
	"strings"

	"github.com/npillmayer/textengine/styled"
	"github.com/npillmayer/textengine/styled/itemized"
	"github.com/npillmayer/uax/bidi"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // in units of Measurer
	Context   *uax11.Context // used for a default FixedWidth measurer
	Measurer  Measurer       // if nil, FixedWidth with Context is used
}

func (config *Config) measurer() Measurer {
	if config.Measurer != nil {
		return config.Measurer
	}
	return FixedWidth{Context: config.Context}
}

// Format is an interface for formatting drivers, given an io.Writer
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	StyledText(string, styled.Style, io.Writer)
	LTR(io.Writer)
	RTL(io.Writer)
	Line(int, int, io.Writer)
	Newline(io.Writer)
}

// Output formats a paragraph of style text using a given formatter.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
//
// Output consumes the paragraph, i.e., para has no text left afterwards.
func Output(para *styled.Paragraph, out io.Writer, config *Config, format Format) error {
	if para == nil || out == nil || config == nil || format == nil {
		return styled.ErrIllegalArguments
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	rm := newRunMeasure(para.Raw(), para.StyleRuns(), config.measurer())
	lines := breakLines(rm, float64(config.LineWidth))
	format.Preamble(out)
	for i, l := range lines {
		line, runs, err := para.WrapAt(l.end)
		if err != nil {
			tracer().Errorf("error Paragraph.WrapAt = %v", err)
			return err
		}
		tracer().Infof("[%3d] %q", i, line.Raw())
		format.Line(int(l.width), config.LineWidth, out)
		for _, run := range runs.Runs {
			if run.Dir == bidi.RightToLeft {
				format.RTL(out)
			} else {
				format.LTR(out)
			}
			segit := run.SegmentIterator(run.Dir == bidi.RightToLeft)
			for segit.Next() {
				dir, from, to := segit.Segment()
				tracer().Debugf("segment (%v): %d…%d", dir, from, to)
				section, err := styled.Section(line, from, to)
				if err != nil {
					return err
				}
				iter := itemized.IterateText(section)
				for iter.Next() {
					if s := strings.TrimRight(iter.Text(), newlines); s != "" {
						sty, _, _ := iter.Style()
						format.StyledText(s, sty, out)
					}
				}
			}
		}
		format.Newline(out)
	}
	format.Postamble(out)
	return nil
}

// Print outputs a styled paragraph to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print(para *styled.Paragraph, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	consoleFmt := NewConsoleFixedWidthFormat(nil, nil)
	return Output(para, os.Stdout, config, consoleFmt)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			config.LineWidth = lineWidthFor(w)
		}
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}

func lineWidthFor(w int) int {
	switch {
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	}
	return 10
}
