// Package completion provides the completion command.
package completion

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/autoatlas/autoatlas/cmd/application"
	"github.com/autoatlas/autoatlas/internal/cmd/completion"
	"github.com/autoatlas/autoatlas/internal/cmd/emoji"
)

// NewCommand creates the completion command. fs receives installed
// scripts.
func NewCommand(app application.Application, fs afero.Fs) *cobra.Command {
	var install, uninstall bool

	cmd := &cobra.Command{
		Use:     "completion [bash|zsh|fish]",
		GroupID: "management",
		Short:   "Generate, install or remove shell completions",
		Long: `Print a completion script to stdout, or install it where the shell
looks for completions.

  $ source <(autoatlas completion bash)
  $ autoatlas completion fish | source
  $ autoatlas completion zsh --install
  $ autoatlas completion zsh --uninstall`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completion.ValidArgs(),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := completion.ParseShell(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			logger := app.Logger()

			switch {
			case install:
				path, err := completion.Install(fs, detectEnv(), cmd.Root(), shell)
				if err != nil {
					return err
				}
				logger.Debug().Str("shell", string(shell)).Str("path", path).Msg("Installed completion")
				fmt.Fprintf(out, "%s %s completions installed to %s\n", emoji.Success, shell, path)
				fmt.Fprintln(out, "  Start a new shell session to enable them.")
				return nil
			case uninstall:
				path, found, err := completion.Uninstall(fs, detectEnv(), shell)
				if err != nil {
					return err
				}
				if !found {
					fmt.Fprintf(out, "%s No %s completions found at %s\n", emoji.Warning, shell, path)
					return nil
				}
				fmt.Fprintf(out, "%s Removed %s completions from %s\n", emoji.Success, shell, path)
				return nil
			}
			return completion.Generate(cmd.Root(), shell, out)
		},
	}

	cmd.Flags().BoolVar(&install, "install", false, "Install the script instead of printing it")
	cmd.Flags().BoolVar(&uninstall, "uninstall", false, "Remove a previously installed script")
	cmd.MarkFlagsMutuallyExclusive("install", "uninstall")
	return cmd
}

func detectEnv() completion.Env {
	home, _ := os.UserHomeDir()
	env := completion.Env{Home: home, Brew: os.Getenv("HOMEBREW_PREFIX")}
	if env.Brew == "" {
		for _, prefix := range []string{"/opt/homebrew", "/usr/local"} {
			if _, err := os.Stat(prefix + "/bin/brew"); err == nil {
				env.Brew = prefix
				break
			}
		}
	}
	return env
}
