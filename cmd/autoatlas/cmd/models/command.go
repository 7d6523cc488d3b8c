// Package models provides the models command.
package models

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/autoatlas/autoatlas/cmd/application"
	"github.com/autoatlas/autoatlas/internal/cmd/output"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/specs"
)

// NewCommand creates the models command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "models <brand> [model]",
		GroupID: "core",
		Aliases: []string{"model"},
		Short:   "List a brand's models or show one model's generations",
		Args:    cobra.RangeArgs(1, 2),
		Example: `  autoatlas models bmw               # List BMW models
  autoatlas models bmw z4            # Show Z4 generations
  autoatlas models bmw z4 -o yaml`,
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

			brand, ok := ix.Brand(args[0])
			if !ok {
				return errors.NewNotFoundError("brand", args[0])
			}
			if len(args) == 1 {
				models := brand.VisibleModels()
				return output.Print(cmd.OutOrStdout(), format, output.ModelsTable(models, format == output.FormatWide), models)
			}

			m, ok := ix.Model(brand.Key, args[1])
			if !ok {
				return errors.NewNotFoundError("model", brand.Key+"/"+args[1])
			}
			if format.IsTable() {
				printModelHeader(cmd.OutOrStdout(), m)
			}
			return output.Print(cmd.OutOrStdout(), format, generationsTable(m), m)
		},
	}
}

func printModelHeader(w io.Writer, m *specs.Model) {
	fmt.Fprintf(w, "%s (%s)\n", m.Name, m.ID)
	if m.Years != "" {
		fmt.Fprintf(w, "Years: %s\n", m.Years)
	}
	if src, ok := specs.ImageSrc(m.RepresentativeImage); ok {
		fmt.Fprintf(w, "Image: %s\n", src)
	}
	fmt.Fprintln(w)
}

func generationsTable(m *specs.Model) output.Data {
	data := output.Data{Headers: []string{"ID", "Name", "Years", "Image"}}
	for _, g := range m.Generations {
		img := g.Image
		src, _ := specs.ImageSrc(&img)
		data.Rows = append(data.Rows, []string{g.ID, g.Name, g.Years, src})
	}
	return data
}
