package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/internal/config"
	"github.com/wbrown/img2ascii/logx"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newLogger(stderr io.Writer, cfg *config.Config) (logx.LoggerX, error) {
	lvl, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	mode, err := logx.ParseColorMode(cfg.LogColor)
	if err != nil {
		return nil, err
	}
	if f, ok := stderr.(*os.File); ok {
		return logx.NewConsoleLogger(f, lvl, mode), nil
	}
	return logx.NewWriterLogger(stderr, lvl), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("img2ascii", flag.ContinueOnError)
	fs.SetOutput(stderr)

	inputFile := fs.String("input", "",
		"Path to the input image file (required, may also be given as an argument)")
	outputFile := fs.String("output", "",
		"Path to save the text (if not specified, prints to stdout)")
	configFile := fs.String("config", "",
		"Path to a TOML config file; flags override its values")
	htmlOut := fs.Bool("html", false,
		"Also export an HTML page to a temporary file")
	openOut := fs.Bool("open", false,
		"Open the HTML page in the default browser (implies -html)")
	pngOut := fs.String("png", "",
		"Also render the text to this PNG file")
	targetWidth := fs.Int("width", 0,
		"Downscale images wider than this many columns, 0 for one character per pixel")
	scaleFactor := fs.Float64("scale", 2.0,
		"Character aspect correction used when downscaling")
	autoOrient := fs.Bool("orient", false,
		"Apply EXIF orientation before converting")
	decoder := fs.String("decoder", "go",
		"Image decoder: go, or opencv in builds with the gocv tag")
	title := fs.String("title", "",
		"HTML page title")
	fontPath := fs.String("font", "",
		"TTF font for PNG output (default: embedded Go Mono)")
	fontSize := fs.Float64("fontsize", 12,
		"Font size in points for PNG output")
	verbose := fs.Bool("v", false,
		"Log debug information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *inputFile == "" && fs.NArg() == 1 {
		*inputFile = fs.Arg(0)
	}
	if *inputFile == "" || fs.NArg() > 1 {
		fmt.Fprintln(stderr, "Please provide the image using the -input flag")
		fs.PrintDefaults()
		return exitUsage
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitError
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "html":
			cfg.HTML = *htmlOut
		case "open":
			cfg.Open = *openOut
		case "width":
			cfg.Width = *targetWidth
		case "scale":
			cfg.Scale = *scaleFactor
		case "orient":
			cfg.AutoOrient = *autoOrient
		case "decoder":
			cfg.Decoder = *decoder
		case "title":
			cfg.Title = *title
		case "font":
			cfg.FontPath = *fontPath
		case "fontsize":
			cfg.FontSize = *fontSize
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid settings: %v\n", err)
		return exitUsage
	}

	logX, err := newLogger(stderr, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid settings: %v\n", err)
		return exitUsage
	}
	log := logx.NewLogToX(logX, "main")

	loader, err := imageutil.LoaderByName(cfg.Decoder)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid settings: %v\n", err)
		return exitUsage
	}

	converter := img2ascii.NewConverter(
		img2ascii.WithTargetWidth(cfg.Width),
		img2ascii.WithScaleFactor(cfg.Scale),
		img2ascii.WithAutoOrient(cfg.AutoOrient),
		img2ascii.WithLoader(loader),
		img2ascii.WithLogger(logx.NewLogToX(logX, "convert")),
	)

	start := time.Now()
	grid, err := converter.ConvertFile(*inputFile)
	if err != nil {
		log.LogPrintf(logx.ERROR, "%v", err)
		return exitError
	}
	text := grid.String()
	log.LogPrintf(logx.DEBUG, "%d characters in %v", len(text), time.Since(start))

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(text), 0644); err != nil {
			log.LogPrintf(logx.ERROR, "Error writing to file: %v", err)
			return exitError
		}
		log.LogPrintf(logx.INFO, "Output written to %s", *outputFile)
	} else {
		io.WriteString(stdout, text)
	}

	// The text is out; export failures below do not invalidate it.
	status := exitOK
	if cfg.HTML || cfg.Open {
		if err := exportHTML(grid, cfg, log); err != nil {
			log.LogPrintf(logx.ERROR, "%v", err)
			status = exitError
		}
	}
	if *pngOut != "" {
		if err := exportPNG(grid, *pngOut, cfg); err != nil {
			log.LogPrintf(logx.ERROR, "%v", err)
			status = exitError
		} else {
			log.LogPrintf(logx.INFO, "PNG output written to %s", *pngOut)
		}
	}
	return status
}

func exportHTML(grid img2ascii.Grid, cfg *config.Config, log logx.Logger) error {
	opts := img2ascii.HTMLOptions{
		Title:      cfg.Title,
		Background: cfg.Background,
		Foreground: cfg.Foreground,
	}
	path, err := img2ascii.ExportHTML(cfg.HTMLDir, grid, opts)
	if err != nil {
		return err
	}
	log.LogPrintf(logx.INFO, "HTML output written to %s", path)

	if !cfg.Open {
		return nil
	}
	return img2ascii.OpenInBrowser(path)
}

func exportPNG(grid img2ascii.Grid, path string, cfg *config.Config) error {
	opts := img2ascii.FontOptions{
		FontPath: cfg.FontPath,
		Size:     cfg.FontSize,
	}
	var err error
	if opts.Background, err = parseColor(cfg.Background); err != nil {
		return err
	}
	if opts.Foreground, err = parseColor(cfg.Foreground); err != nil {
		return err
	}
	return img2ascii.SaveGridToPNG(grid, path, opts)
}

func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := img2ascii.ParseColor(s)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}
