package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhpenta/nanobanana"
	"github.com/mhpenta/nanobanana/internal/cli"
	"github.com/mhpenta/nanobanana/provider/gemini"
)

// version is overridden at build time with -ldflags "-X ...commands.version=..."
var version = "dev"

// errReported marks a failure whose report line has already been written.
var errReported = errors.New("failure reported")

// App carries the process dependencies of one invocation.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// LookupEnv reads the environment, os.LookupEnv in production
	LookupEnv func(string) (string, bool)

	// NewGenerator builds the remote client once a key is resolved
	NewGenerator nanobanana.GeneratorFactory

	// Models lists the known models for the models command
	Models func() []nanobanana.ModelInfo

	Paths *cli.Paths

	// Now is the clock for derived filenames, time.Now when nil
	Now func() time.Time

	// Global flags
	cfgFile string
	verbose bool
}

// Execute runs the CLI against the real process and returns the exit code.
func Execute() int {
	app := &App{
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		LookupEnv:    os.LookupEnv,
		NewGenerator: gemini.Factory(""),
		Models:       gemini.SupportedModels,
	}

	paths, err := cli.NewPaths(cli.DefaultAppName)
	if err != nil {
		app.writeReport(nanobanana.Failure(fmt.Errorf("locate install paths: %w", err)))
		return 1
	}
	app.Paths = paths

	return app.Run(context.Background(), os.Args[1:])
}

// Run executes the command line args and returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	default:
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return 1
	}
}

func (a *App) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nanobanana",
		Short: "Generate images with Gemini from the command line",
		Long: `nanobanana sends a prompt, and optionally reference images, to the
Gemini image API and writes the returned images to disk.

Every generate run prints exactly one JSON line to stdout:
  {"ok":true,"data":{"files":[...],"model":"...","text":...,"aspect_ratio":...,"size":...}}
  {"ok":false,"error":"..."}

Examples:
  # Generate with a derived filename
  nanobanana generate "a banana wearing sunglasses"

  # Edit a reference image into a fixed output path
  nanobanana generate "make it night time" -i day.png -o night.png --aspect 16:9
`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.config/nanobanana/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output on stderr")

	rootCmd.AddCommand(a.newGenerateCmd())
	rootCmd.AddCommand(a.newModelsCmd())

	return rootCmd
}

// logger returns a stderr text logger; warnings only unless verbose.
func (a *App) logger() *slog.Logger {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.Stderr, &slog.HandlerOptions{Level: level}))
}

func (a *App) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	return a.Paths.ConfigFile()
}

func (a *App) writeReport(r nanobanana.Report) {
	if err := cli.WriteReport(a.Stdout, r); err != nil {
		fmt.Fprintf(a.Stderr, "Error: write report: %v\n", err)
	}
}

// fail writes a Failure line for err and returns errReported.
func (a *App) fail(err error) error {
	a.writeReport(nanobanana.Failure(err))
	return errReported
}
