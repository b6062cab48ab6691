// Package main provides the CLI tool for rendering anchored layouts.
//
// Usage:
//
//	gui render [options] [path...]   Render layout files to PNG
//	gui check [path...]              Validate layout files
//	gui init [file]                  Write an example layout
//	gui help                         Show help
//
// Examples:
//
//	gui render -sizes 320x240,1024x768 demo.toml
//	gui check ./...
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `gui - renderer for anchored control layouts

Usage:
  gui <command> [options] [path...]

Commands:
  render      Render layout files to PNG images
  check       Validate layout files without rendering
  init        Write an example layout file
  version     Print version information
  help        Show this help message

Options:
  -o dir               Output directory for render (default ".")
  -sizes WxH[,WxH...]  Render at each size instead of the declared one
  -v                   Verbose output

Environment:
  GUI_DEBUG=path       Write debug logs to path

Examples:
  gui render demo.toml                       Render at the declared size
  gui render -o out -sizes 400x300,800x600 demo.toml
  gui check ./...                            Validate all .toml files recursively
  gui init layout.toml                       Start from the example layout
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render":
		if err := runRender(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "init":
		if err := runInit(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("gui version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
