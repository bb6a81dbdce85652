package commands

import (
	"github.com/spf13/cobra"

	"github.com/mhpenta/nanobanana/internal/cli"
)

func (a *App) newModelsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the supported image models",
		Long: `List the image models this client knows, with their supported aspect
ratios and output sizes. The first entry is the default model.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := cli.FormatYAML
			if asJSON {
				format = cli.FormatJSON
			}
			return cli.Output(a.Models(), cli.OutputOptions{
				Format: format,
				Writer: a.Stdout,
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
