package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/grindlemire/go-gui/layoutfile"
)

// runInit implements the init subcommand.
// It writes the example layout to a file, or to stdout without arguments.
func runInit(args []string) error {
	var buf bytes.Buffer
	if err := layoutfile.Example().Encode(&buf); err != nil {
		return fmt.Errorf("encoding example: %w", err)
	}

	switch len(args) {
	case 0:
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	case 1:
	default:
		return errors.New("init takes at most one file")
	}

	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
