package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/textengine"
	"github.com/npillmayer/textengine/styled"
	"github.com/npillmayer/textengine/styled/formatter"
	"github.com/npillmayer/uax/bidi"
	"github.com/npillmayer/uax/uax11"
)

// defaultHeightWidth is the width in points for FormatHeight if none is configured.
const defaultHeightWidth = 400

// render parses markup from in and writes it to out in the configured format.
func render(cfg Config, in io.Reader, out io.Writer) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	col, err := cfg.BaseColor()
	if err != nil {
		return err
	}
	engine := textengine.WithMarkdown(
		textengine.WithBaseFont(cfg.BaseFont()),
		textengine.WithColor(col),
	)
	text, err := engine.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	switch cfg.Format {
	case FormatHeight:
		width := cfg.Width
		if width <= 0 {
			width = defaultHeightWidth
		}
		_, err = fmt.Fprintf(out, "%g\n", engine.SuggestedHeight(text, float64(width)))
		return err
	case FormatHTML:
		para, err := paragraph(text)
		if err != nil {
			return err
		}
		config := &formatter.Config{LineWidth: cfg.Width, Context: uax11.LatinContext}
		if config.LineWidth <= 0 {
			config.LineWidth = 80
		}
		return formatter.NewHTML().Print(para, out, config)
	case FormatConsole, "":
		para, err := paragraph(text)
		if err != nil {
			return err
		}
		config := formatter.ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
		if cfg.Width > 0 {
			config.LineWidth = cfg.Width
		}
		codes := &formatter.PlainCodes
		if cfg.Bidi {
			codes = &formatter.DefaultCodes
		}
		return formatter.Output(para, out, config, formatter.NewConsoleFixedWidthFormat(codes, nil))
	}
	return fmt.Errorf("unknown output format %q", cfg.Format)
}

func paragraph(text *styled.Text) (*styled.Paragraph, error) {
	return styled.ParagraphFromText(text, 0, text.Len(), bidi.LeftToRight, nil)
}
