// Package logos provides the logos command.
package logos

import (
	"github.com/spf13/cobra"

	"github.com/autoatlas/autoatlas/cmd/application"
	"github.com/autoatlas/autoatlas/internal/cmd/globals"
	"github.com/autoatlas/autoatlas/internal/cmd/output"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/logos"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

// Classified is a logo with its absolute score and tier.
type Classified struct {
	Logo  logos.Logo `json:"logo" yaml:"logo"`
	Score float64    `json:"score" yaml:"score"`
	Tier  tiers.ID   `json:"tier" yaml:"tier"`
}

// NewCommand creates the logos command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		sort string
		tier string
	)

	cmd := &cobra.Command{
		Use:     "logos [slug]",
		GroupID: "core",
		Aliases: []string{"logo"},
		Short:   "Browse the logo catalog or classify one logo",
		Args:    cobra.MaximumNArgs(1),
		Example: `  autoatlas logos                        # All logos, name ascending
  autoatlas logos --search alfa --sort name-desc
  autoatlas logos --tier nivel-6 -o wide # Logos classified as commercial
  autoatlas logos scania                 # Score and tier of one logo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			order, err := logos.ParseSortOrder(sort)
			if err != nil {
				return err
			}
			var tierID tiers.ID
			if tier != "" {
				id, ok := tiers.ParseID(tier)
				if !ok {
					return errors.NewValidationError("tier", tier, "unknown tier")
				}
				tierID = id
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			all, err := client.Logos(cmd.Context())
			if err != nil {
				return err
			}
			tierCount := client.TierCount()

			if len(args) == 1 {
				logo, ok := logos.Find(all, args[0])
				if !ok {
					return errors.NewNotFoundError("logo", args[0])
				}
				c := Classified{Logo: logo, Score: tiers.Score(logo), Tier: tiers.TierID(logo, tierCount)}
				return output.Print(cmd.OutOrStdout(), format, output.LogosTable([]logos.Logo{logo}, tierCount, true), c)
			}

			flags := globals.ParseResources(cmd)
			filtered := logos.Filter(all, flags.Search, order)
			if tierID != "" {
				filtered = byTier(filtered, tierID, tierCount)
			}
			filtered = globals.Limit(filtered, flags.Limit)
			return output.Print(cmd.OutOrStdout(), format, output.LogosTable(filtered, tierCount, format == output.FormatWide), filtered)
		},
	}

	cmd.Flags().StringVar(&sort, "sort", string(logos.SortNameAsc), "Sort order: name-asc or name-desc")
	cmd.Flags().StringVar(&tier, "tier", "", "Only logos whose score classifies into this tier (e.g. nivel-2)")
	globals.AddResourceFlags(cmd)
	return cmd
}

func byTier(all []logos.Logo, id tiers.ID, tierCount int) []logos.Logo {
	var out []logos.Logo
	for _, l := range all {
		if tiers.TierID(l, tierCount) == id {
			out = append(out, l)
		}
	}
	return out
}
