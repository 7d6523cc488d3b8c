// Package docs provides the docs command.
package docs

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autoatlas/autoatlas/cmd/application"
	"github.com/autoatlas/autoatlas/internal/cmd/emoji"
	"github.com/autoatlas/autoatlas/internal/i18n"
	tooldocs "github.com/autoatlas/autoatlas/internal/tools/docs"
	"github.com/autoatlas/autoatlas/pkg/errors"
)

// NewCommand creates the docs command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		outputDir string
		lang      string
	)

	cmd := &cobra.Command{
		Use:     "docs",
		GroupID: "management",
		Short:   "Generate the Markdown catalog",
		Long: `Generate a Markdown catalog of the atlas: an overview page, one page
per brand with its models and generations, and one page per logo tier.
Pages carry Hugo front matter.`,
		Example: `  autoatlas docs                       # Write ./docs/catalog
  autoatlas docs --output site/content --lang en`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if lang != "" && !i18n.IsSupported(lang) {
				return errors.NewValidationError("lang", lang, "must be es or en")
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			gen := tooldocs.New(
				tooldocs.WithFS(client.FS()),
				tooldocs.WithOutputDir(outputDir),
				tooldocs.WithAssets(app.Assets()),
				tooldocs.WithLocale(i18n.Negotiate(lang, "")),
				tooldocs.WithLogger(app.Logger()),
			)
			res, err := gen.Generate(cmd.Context(), client)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %d pages (%d brands, %d tiers) to %s\n",
				emoji.Success, res.Pages, res.Brands, res.Tiers, outputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "./docs", "Output directory")
	cmd.Flags().StringVar(&lang, "lang", "", "Label language: es or en (default es)")
	return cmd
}
