// Package tiers provides the tiers command.
package tiers

import (
	"github.com/spf13/cobra"

	"github.com/autoatlas/autoatlas/cmd/application"
	"github.com/autoatlas/autoatlas/internal/cmd/output"
	"github.com/autoatlas/autoatlas/internal/i18n"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

// NewCommand creates the tiers command.
func NewCommand(app application.Application) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:     "tiers [tier]",
		GroupID: "core",
		Aliases: []string{"tier"},
		Short:   "Show quiz difficulty tiers or the logos grouped into one",
		Args:    cobra.MaximumNArgs(1),
		Example: `  autoatlas tiers                # Tier labels and sizes
  autoatlas tiers --lang en      # English labels
  autoatlas tiers nivel-3        # Logos bucketed into tier 3
  autoatlas tiers 3 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}
			groups, err := client.TierGroups(cmd.Context())
			if err != nil {
				return err
			}

			locale := i18n.Negotiate(lang, lang)
			messages := i18n.Default()
			count := client.TierCount()
			meta := make([]tiers.Tier, 0, count)
			for _, t := range tiers.Tiers()[:count] {
				meta = append(meta, messages.Tier(locale, t))
			}

			if len(args) == 1 {
				id, ok := tiers.ParseID(args[0])
				if !ok || tiers.Meta(id).Level > count {
					return errors.NewNotFoundError("tier", args[0])
				}
				members := groups[id]
				return output.Print(cmd.OutOrStdout(), format, output.LogosTable(members, count, format == output.FormatWide), members)
			}

			rows := output.TierRows(meta, groups)
			return output.Print(cmd.OutOrStdout(), format, output.TiersTable(rows), rows)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Label language: es or en (default es)")
	return cmd
}
