// Command glyphcell renders glyph clusters the way a terminal cell renderer
// sees them: shaped, composited into one grayscale bitmap and trimmed to a
// cell width.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/glyphcell"
	"github.com/gogpu/glyphcell/text"
	"github.com/tdewolff/argp"
)

// Render renders a cluster to the terminal or to an image file.
type Render struct {
	Index     int     `short:"i" desc:"Font index for font collections"`
	Size      float64 `short:"s" default:"11" desc:"Font size in points"`
	DPI       int     `default:"96" desc:"Device resolution"`
	NoHinting bool    `desc:"Disable hinting"`
	HintStyle int     `default:"3" desc:"Hint style, 0 to 3"`
	Parser    string  `default:"freetype" desc:"Font backend, freetype or ximage"`
	Features  string  `short:"f" desc:"Comma separated font features, e.g. -liga,+calt"`
	Cell      int     `short:"c" desc:"Cell width in pixels, 0 disables trimming"`
	Scale     int     `default:"1" desc:"Image scale"`
	Output    string  `short:"o" desc:"Output filename (.png or .tiff), terminal when empty"`
	Verbose   bool    `short:"v" desc:"Log debug output to stderr"`
	Font      string  `index:"0" desc:"Font file"`
	Text      string  `index:"1" desc:"Text to render"`
}

// Shape prints the shaping records of a string.
type Shape struct {
	Index     int     `short:"i" desc:"Font index for font collections"`
	Size      float64 `short:"s" default:"11" desc:"Font size in points"`
	DPI       int     `default:"96" desc:"Device resolution"`
	Parser    string  `default:"freetype" desc:"Font backend, freetype or ximage"`
	Features  string  `short:"f" desc:"Comma separated font features, e.g. -liga,+calt"`
	Direction string  `short:"d" desc:"Text direction, ltr, rtl, ttb or btt; guessed when empty"`
	Font      string  `index:"0" desc:"Font file"`
	Text      string  `index:"1" desc:"Text to shape"`
}

// Info prints the metrics of a face.
type Info struct {
	Index  int     `short:"i" desc:"Font index for font collections"`
	Size   float64 `short:"s" default:"11" desc:"Font size in points"`
	DPI    int     `default:"96" desc:"Device resolution"`
	Parser string  `default:"freetype" desc:"Font backend, freetype or ximage"`
	Font   string  `index:"0" desc:"Font file"`
}

func main() {
	root := argp.NewCmd(&Render{}, "Glyph cluster renderer for terminal cells")
	root.AddCmd(&Shape{}, "shape", "Print shaping records")
	root.AddCmd(&Info{}, "info", "Print face metrics")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Render) Run() error {
	if cmd.Font == "" || cmd.Text == "" {
		return argp.ShowUsage
	}
	return cmd.run(os.Stdout)
}

func (cmd *Render) run(w io.Writer) error {
	if cmd.Output != "" {
		if ext := filepath.Ext(cmd.Output); ext != ".png" && ext != ".tiff" {
			return fmt.Errorf("output extension must be PNG or TIFF")
		}
	}

	logger := newLogger(cmd.Verbose)
	lib := glyphcell.NewLibrary(
		glyphcell.WithDefaultDPI(cmd.DPI, cmd.DPI),
		glyphcell.WithParserName(cmd.Parser),
		glyphcell.WithLogger(logger),
	)
	defer func() { _ = lib.Close() }()

	face, err := lib.OpenFace(cmd.Font, cmd.Index, cmd.Size,
		text.WithHintStyle(!cmd.NoHinting, cmd.HintStyle),
		text.WithFeatures(splitList(cmd.Features)...),
	)
	if err != nil {
		return err
	}

	bm, err := lib.Render(face, cmd.Text, cmd.Cell)
	if err != nil {
		return err
	}

	if cmd.Output == "" {
		printASCII(w, bm)
		return nil
	}
	return writeImage(cmd.Output, inkImage(bm, cmd.Scale))
}

func (cmd *Shape) Run() error {
	if cmd.Font == "" || cmd.Text == "" {
		return argp.ShowUsage
	}
	return cmd.run(os.Stdout)
}

func (cmd *Shape) run(w io.Writer) error {
	dir, err := parseDirection(cmd.Direction)
	if err != nil {
		return err
	}

	lib := glyphcell.NewLibrary(
		glyphcell.WithDefaultDPI(cmd.DPI, cmd.DPI),
		glyphcell.WithParserName(cmd.Parser),
	)
	defer func() { _ = lib.Close() }()

	face, err := lib.OpenFace(cmd.Font, cmd.Index, cmd.Size,
		text.WithDirection(dir),
		text.WithFeatures(splitList(cmd.Features)...),
	)
	if err != nil {
		return err
	}

	glyphs, err := face.Shape(cmd.Text)
	if err != nil {
		return err
	}
	for i, g := range glyphs {
		xoff, yoff := g.Offset()
		xadv, yadv := g.Advance()
		fmt.Fprintf(w, "%2d  glyph=%-5d cluster=%-3d x_offset=%.2f y_offset=%.2f x_advance=%.2f y_advance=%.2f\n",
			i, g.GlyphID, g.Cluster, xoff, yoff, xadv, yadv)
	}
	return nil
}

func (cmd *Info) Run() error {
	if cmd.Font == "" {
		return argp.ShowUsage
	}
	return cmd.run(os.Stdout)
}

func (cmd *Info) run(w io.Writer) error {
	lib := glyphcell.NewLibrary(
		glyphcell.WithDefaultDPI(cmd.DPI, cmd.DPI),
		glyphcell.WithParserName(cmd.Parser),
	)
	defer func() { _ = lib.Close() }()

	face, err := lib.OpenFace(cmd.Font, cmd.Index, cmd.Size)
	if err != nil {
		return err
	}

	src := face.Source()
	fmt.Fprintf(w, "File: %s\n", cmd.Font)
	fmt.Fprintf(w, "Name: %s\n", src.Name())
	fmt.Fprintf(w, "Glyphs: %d\n", src.Parsed().NumGlyphs())
	fmt.Fprintf(w, "Face: %s\n", face)
	fmt.Fprintf(w, "Cell height: %dpx\n", face.CellHeight())
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func parseDirection(s string) (text.Direction, error) {
	switch s {
	case "":
		return text.DirectionAuto, nil
	case "ltr":
		return text.DirectionLTR, nil
	case "rtl":
		return text.DirectionRTL, nil
	case "ttb":
		return text.DirectionTTB, nil
	case "btt":
		return text.DirectionBTT, nil
	}
	return text.DirectionAuto, fmt.Errorf("unknown direction %q", s)
}
