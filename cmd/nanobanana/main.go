// Package main provides the nanobanana CLI tool.
//
// Usage:
//
//	nanobanana generate <prompt> [flags]
//	nanobanana models [--json]
//
// The generate command prints exactly one JSON line to stdout and exits
// 0 on success, 1 on failure. Progress and logs go to stderr.
//
// Configuration:
//
//	GEMINI_API_KEY is read from the environment, then from .env at the
//	install root, then from api_key in ~/.config/nanobanana/config.yaml.
package main

import (
	"os"

	"github.com/mhpenta/nanobanana/cmd/nanobanana/commands"
)

func main() {
	os.Exit(commands.Execute())
}
