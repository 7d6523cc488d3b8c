// Package brands provides the brands command.
package brands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/autoatlas/autoatlas/cmd/application"
	"github.com/autoatlas/autoatlas/internal/cmd/globals"
	"github.com/autoatlas/autoatlas/internal/cmd/output"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/specs"
)

// NewCommand creates the brands command.
func NewCommand(app application.Application) *cobra.Command {
	var withModels bool

	cmd := &cobra.Command{
		Use:     "brands [brand]",
		GroupID: "core",
		Aliases: []string{"brand"},
		Short:   "List indexed brands or show one brand's models",
		Args:    cobra.MaximumNArgs(1),
		Example: `  autoatlas brands                   # List all brands
  autoatlas brands --with-models     # Only brands with models
  autoatlas brands "Alfa Romeo"      # Show a brand's models
  autoatlas brands --search merc -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}
			ix, err := client.Index(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				brand, ok := ix.Brand(args[0])
				if !ok {
					return errors.NewNotFoundError("brand", args[0])
				}
				models := brand.VisibleModels()
				return output.Print(cmd.OutOrStdout(), format, output.ModelsTable(models, format == output.FormatWide), models)
			}

			flags := globals.ParseResources(cmd)
			brands := ix.Brands()
			if withModels {
				brands = ix.BrandsWithModels()
			}
			brands = globals.Limit(filterBrands(brands, flags.Search), flags.Limit)

			app.Logger().Debug().Int("brands", len(brands)).Msg("Listing brands")
			return output.Print(cmd.OutOrStdout(), format, output.BrandsTable(brands), brands)
		},
	}

	cmd.Flags().BoolVar(&withModels, "with-models", false, "Only list brands with at least one model")
	globals.AddResourceFlags(cmd)
	return cmd
}

func filterBrands(brands []*specs.Brand, search string) []*specs.Brand {
	if search == "" {
		return brands
	}
	needle := specs.NormalizeKey(search)
	lower := strings.ToLower(search)
	var out []*specs.Brand
	for _, b := range brands {
		if strings.Contains(b.Key, needle) || strings.Contains(strings.ToLower(b.Name), lower) {
			out = append(out, b)
		}
	}
	return out
}
