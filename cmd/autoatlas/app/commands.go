package app

import (
	"github.com/spf13/cobra"

	"github.com/autoatlas/autoatlas/cmd/autoatlas/cmd/brands"
	"github.com/autoatlas/autoatlas/cmd/autoatlas/cmd/completion"
	"github.com/autoatlas/autoatlas/cmd/autoatlas/cmd/docs"
	"github.com/autoatlas/autoatlas/cmd/autoatlas/cmd/logos"
	"github.com/autoatlas/autoatlas/cmd/autoatlas/cmd/models"
	"github.com/autoatlas/autoatlas/cmd/autoatlas/cmd/quiz"
	"github.com/autoatlas/autoatlas/cmd/autoatlas/cmd/serve"
	"github.com/autoatlas/autoatlas/cmd/autoatlas/cmd/tiers"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(brands.NewCommand(a))
	rootCmd.AddCommand(models.NewCommand(a))
	rootCmd.AddCommand(logos.NewCommand(a))
	rootCmd.AddCommand(tiers.NewCommand(a))
	rootCmd.AddCommand(quiz.NewCommand(a))
	rootCmd.AddCommand(serve.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(docs.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand(a, a.fs))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("autoatlas %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
