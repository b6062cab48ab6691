package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-gui/layoutfile"
)

// runCheck implements the check subcommand.
// It decodes and validates layout files without building them.
func runCheck(args []string) error {
	verbose := false
	var paths []string

	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectLayoutFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", layoutExt)
	}

	var errorCount int
	for _, path := range files {
		if verbose {
			fmt.Printf("Checking %s\n", path)
		}
		if err := checkFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}
	return nil
}

func checkFile(path string) error {
	f, err := layoutfile.Load(path)
	if err != nil {
		return err
	}
	return f.Validate()
}
