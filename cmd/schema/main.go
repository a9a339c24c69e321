// Command schema writes the JSON schema for player option files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"tww-multiworld/world/internal/options"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	if err := run(outPath); err != nil {
		fmt.Fprintf(os.Stderr, "schema: %v\n", err)
		os.Exit(1)
	}
}

func run(outPath string) error {
	// Unknown keys in an option file are almost always typos; the schema
	// rejects them so editors flag the mistake instead of the generator
	// silently applying a default.
	reflector := jsonschema.Reflector{}
	schema := reflector.Reflect(new(options.Options))
	schema.Title = "The Wind Waker Player Options"
	schema.Description = "Validates player-authored option files consumed by world generation"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Write-then-rename keeps a half-written schema from ever being picked
	// up by a watcher.
	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, outPath)
}
