package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/mhpenta/nanobanana"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatYAML outputs as YAML (default for terminal)
	FormatYAML OutputFormat = "yaml"
	// FormatJSON outputs as JSON
	FormatJSON OutputFormat = "json"
)

// OutputOptions configures output behavior
type OutputOptions struct {
	// Format is the output format (yaml, json)
	Format OutputFormat

	// Indent is the indentation for JSON output
	Indent string

	// Writer is the destination, os.Stdout when nil
	Writer io.Writer
}

// Output writes result in the configured format.
func Output(result any, opts OutputOptions) error {
	var w io.Writer = os.Stdout
	if opts.Writer != nil {
		w = opts.Writer
	}

	switch opts.Format {
	case FormatJSON:
		indent := opts.Indent
		if indent == "" {
			indent = "  "
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", indent)
		return enc.Encode(result)
	case FormatYAML, "":
		return outputYAML(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

func outputYAML(w io.Writer, result any) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteReport prints the report as a single JSON line.
func WriteReport(w io.Writer, r nanobanana.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}
