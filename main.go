package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/shade-tree/pkg/output"
	"github.com/df07/shade-tree/pkg/renderer"
	"github.com/df07/shade-tree/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType string
	mode      string
	outPath   string
	config    scene.SamplingConfig
	help      bool
}

func parseFlags(args []string, errOut io.Writer) (options, *flag.FlagSet, error) {
	var opts options
	defaults := scene.DefaultSamplingConfig()

	fs := flag.NewFlagSet("shade-tree", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.sceneType, "scene", "random", "Scene to render (see -help for the list)")
	fs.StringVar(&opts.mode, "mode", "render", "Output mode: 'render', 'blank' or 'gradient'")
	fs.StringVar(&opts.outPath, "out", "", "Output file (.png, .jpg, .bmp, .tiff); default output/<scene>/render_<timestamp>.png")
	fs.IntVar(&opts.config.Width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&opts.config.Height, "height", defaults.Height, "Image height in pixels")
	fs.IntVar(&opts.config.SamplesPerPixel, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&opts.config.MaxDepth, "depth", defaults.MaxDepth, "Maximum ray bounce depth")
	fs.IntVar(&opts.config.NumWorkers, "workers", 0, "Worker goroutines (0 = one per CPU)")
	fs.Int64Var(&opts.config.Seed, "seed", defaults.Seed, "Seed for scene generation and sampling")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}

	switch opts.mode {
	case "render", "blank", "gradient":
	default:
		return opts, fs, fmt.Errorf("unknown mode %q", opts.mode)
	}
	if opts.config.Width <= 0 || opts.config.Height <= 0 {
		return opts, fs, fmt.Errorf("invalid image size %dx%d", opts.config.Width, opts.config.Height)
	}
	if opts.config.SamplesPerPixel <= 0 {
		return opts, fs, fmt.Errorf("samples must be positive, got %d", opts.config.SamplesPerPixel)
	}
	return opts, fs, nil
}

func printHelp(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Shade Tree Path Tracer")
	fmt.Fprintln(out, "Usage: shade-tree [options]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(out, "  %-14s %s\n", info.ID, info.Description)
	}
}

// outputPath returns the requested path or a timestamped default under output/
func outputPath(opts options, now time.Time) string {
	if opts.outPath != "" {
		return opts.outPath
	}
	name := opts.sceneType
	if opts.mode != "render" {
		name = opts.mode
	}
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func run(args []string, out, errOut io.Writer) error {
	opts, fs, err := parseFlags(args, errOut)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(out, fs)
		return nil
	}

	width, height := opts.config.Width, opts.config.Height
	startTime := time.Now()

	var buffer []uint32
	switch opts.mode {
	case "blank":
		buffer = renderer.BlankScreen(width, height)
	case "gradient":
		buffer = renderer.Gradient(width, height)
	default:
		fmt.Fprintf(out, "Rendering %s scene at %dx%d with %d samples per pixel...\n",
			opts.sceneType, width, height, opts.config.SamplesPerPixel)
		progress := log.New(errOut, "", log.LstdFlags)
		buffer, err = renderer.RenderScene(opts.sceneType, opts.config, progress)
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Completed in %v\n", time.Since(startTime))

	filename := outputPath(opts, startTime)
	if err := output.Save(filename, buffer, width, height); err != nil {
		return fmt.Errorf("error saving image: %w", err)
	}
	fmt.Fprintf(out, "Image saved as %s\n", filename)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
