package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhpenta/nanobanana"
	"github.com/mhpenta/nanobanana/internal/cli"
)

type generateOptions struct {
	output  string
	images  []string
	aspect  string
	size    string
	model   string
	noText  bool
	timeout time.Duration
}

func (a *App) newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate images from a prompt",
		Long: `Send one prompt to the image model and write every returned image.

The first image goes to --output, or to a name derived from the prompt and
the current time. Further images get -2, -3, ... before the extension.
Existing files are overwritten.

Examples:
  nanobanana generate "a watercolor fox"
  nanobanana generate "combine these" -i a.png -i b.jpg -o combined.png
  nanobanana generate "poster" --aspect 2:3 --size 4K --no-text`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return a.fail(fmt.Errorf("generate takes exactly one prompt argument, got %d", len(args)))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args[0], opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return a.fail(err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output path for the first image")
	flags.StringArrayVarP(&opts.images, "image", "i", nil, "reference image path (repeatable)")
	flags.StringVar(&opts.aspect, "aspect", "", "aspect ratio: 1:1, 2:3, 3:2, 3:4, 4:3, 4:5, 5:4, 9:16, 16:9, 21:9")
	flags.StringVar(&opts.size, "size", "", "output size: 1K, 2K, 4K")
	flags.StringVar(&opts.model, "model", "", fmt.Sprintf("model id (default %s)", nanobanana.ModelDefault))
	flags.BoolVar(&opts.noText, "no-text", false, "request image parts only")
	flags.DurationVar(&opts.timeout, "timeout", 0, fmt.Sprintf("timeout for the API call (default %s)", nanobanana.DefaultTimeout))

	return cmd
}

func (a *App) runGenerate(cmd *cobra.Command, prompt string, opts *generateOptions) error {
	logger := a.logger()

	fileCfg, err := cli.LoadConfig(a.configPath())
	if err != nil {
		return a.fail(err)
	}
	if fileCfg.APIKey != "" {
		logger.Debug("config file provides an API key",
			"path", fileCfg.Path(),
			"api_key", cli.MaskAPIKey(fileCfg.APIKey),
		)
	}

	cfg, err := fileCfg.Apply(nanobanana.DefaultConfig())
	if err != nil {
		return a.fail(err)
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = nanobanana.Model(opts.model)
	}
	if flags.Changed("aspect") {
		cfg.AspectRatio = nanobanana.AspectRatio(opts.aspect)
	}
	if flags.Changed("size") {
		cfg.Size = nanobanana.ImageSize(opts.size)
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	cfg.Output = opts.output
	cfg.Images = opts.images
	cfg.ImageOnly = opts.noText

	pipeline := &nanobanana.Pipeline{
		Credentials: nanobanana.EnvCredentials{
			EnvFile:  a.Paths.EnvFile(),
			Fallback: fileCfg.APIKey,
			Lookup:   a.LookupEnv,
		},
		NewGenerator: a.NewGenerator,
		Logger:       logger,
		Now:          a.Now,
	}

	cli.NewStatus(a.Stderr, cli.DefaultTheme).Printf("Generating image...")

	report := pipeline.Run(cmd.Context(), prompt, cfg)
	a.writeReport(report)
	if !report.OK {
		return errReported
	}
	return nil
}
