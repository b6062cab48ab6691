package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/layoutfile"
)

type size struct {
	width, height int
}

func (s size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

type renderOptions struct {
	outDir  string
	sizes   []size
	logPath string
	verbose bool
	paths   []string
}

// runRender implements the render subcommand.
// Every (file, size) pair renders on its own goroutine with its own tree.
func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	if opts.logPath != "" {
		if err := debug.Init(opts.logPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	files, err := collectLayoutFiles(opts.paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", layoutExt)
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	layouts := make([]*layoutfile.File, len(files))
	for i, path := range files {
		f, err := layoutfile.Load(path)
		if err != nil {
			return err
		}
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		layouts[i] = f
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range layouts {
		sizes := opts.sizes
		if len(sizes) == 0 {
			sizes = []size{{f.Window.Width, f.Window.Height}}
		}
		for _, s := range sizes {
			out := outputFileName(opts.outDir, files[i], s)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := renderFile(f, s, out); err != nil {
					return fmt.Errorf("%s at %s: %w", files[i], s, err)
				}
				if opts.verbose {
					fmt.Printf("Rendered %s\n", out)
				}
				return nil
			})
		}
	}
	return g.Wait()
}

func renderFile(f *layoutfile.File, s size, out string) error {
	w, _, err := f.BuildSize(s.width, s.height)
	if err != nil {
		return err
	}
	defer w.Close()

	bmp, err := w.Render()
	if err != nil {
		return err
	}
	return bmp.SavePNG(out)
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{outDir: "."}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-v", "--verbose":
			opts.verbose = true
		case "-o", "-sizes", "-log":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			i++
			switch arg {
			case "-o":
				opts.outDir = args[i]
			case "-log":
				opts.logPath = args[i]
			case "-sizes":
				sizes, err := parseSizes(args[i])
				if err != nil {
					return opts, err
				}
				opts.sizes = append(opts.sizes, sizes...)
			}
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown option %s", arg)
			}
			opts.paths = append(opts.paths, arg)
		}
	}
	if len(opts.paths) == 0 {
		return opts, errors.New("render needs at least one layout file")
	}
	return opts, nil
}

// parseSizes parses a comma separated list of WxH sizes.
func parseSizes(s string) ([]size, error) {
	var sizes []size
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ws, hs, ok := strings.Cut(part, "x")
		if !ok {
			return nil, fmt.Errorf("size %q: want WxH", part)
		}
		w, err := strconv.Atoi(ws)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		h, err := strconv.Atoi(hs)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("size %q must be positive", part)
		}
		sizes = append(sizes, size{w, h})
	}
	if len(sizes) == 0 {
		return nil, errors.New("no sizes given")
	}
	return sizes, nil
}

// outputFileName names the PNG for a layout rendered at s.
// Examples:
//
//	demo.toml at 400x300     -> <dir>/demo-400x300.png
//	ui/main.toml at 80x24    -> <dir>/main-80x24.png
func outputFileName(dir, layoutPath string, s size) string {
	base := strings.TrimSuffix(filepath.Base(layoutPath), filepath.Ext(layoutPath))
	return filepath.Join(dir, fmt.Sprintf("%s-%s.png", base, s))
}
