// Package completion installs and removes shell completion scripts.
package completion

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/autoatlas/autoatlas/pkg/constants"
	"github.com/autoatlas/autoatlas/pkg/errors"
)

// Shell is a supported completion target.
type Shell string

// Supported shells.
const (
	Bash Shell = "bash"
	Zsh  Shell = "zsh"
	Fish Shell = "fish"
)

// Shells lists every supported shell.
func Shells() []Shell {
	return []Shell{Bash, Zsh, Fish}
}

// ValidArgs returns the shells as cobra completion arguments.
func ValidArgs() []string {
	out := make([]string, 0, len(Shells()))
	for _, s := range Shells() {
		out = append(out, string(s))
	}
	return out
}

// ParseShell validates a shell name.
func ParseShell(name string) (Shell, error) {
	for _, s := range Shells() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", errors.NewValidationError("shell", name, "must be bash, zsh or fish")
}

// Env locates completion directories. Brew is the Homebrew prefix, empty
// when Homebrew is absent.
type Env struct {
	Home string
	Brew string
}

// Path returns where the completion script for shell is installed.
func (e Env) Path(shell Shell) string {
	name := constants.BinaryName
	switch shell {
	case Bash:
		if e.Brew != "" {
			return filepath.Join(e.Brew, "etc", "bash_completion.d", name)
		}
		return filepath.Join(e.Home, ".bash_completion.d", name)
	case Zsh:
		if e.Brew != "" {
			return filepath.Join(e.Brew, "share", "zsh", "site-functions", "_"+name)
		}
		return filepath.Join(e.Home, ".zsh", "completions", "_"+name)
	default:
		if e.Brew != "" {
			return filepath.Join(e.Brew, "share", "fish", "vendor_completions.d", name+".fish")
		}
		return filepath.Join(e.Home, ".config", "fish", "completions", name+".fish")
	}
}

// Generate writes the completion script for shell.
func Generate(root *cobra.Command, shell Shell, w io.Writer) error {
	switch shell {
	case Bash:
		return root.GenBashCompletionV2(w, true)
	case Zsh:
		return root.GenZshCompletion(w)
	case Fish:
		return root.GenFishCompletion(w, true)
	}
	return errors.NewValidationError("shell", string(shell), "unsupported")
}

// Install writes the completion script for shell and returns its path.
func Install(fs afero.Fs, env Env, root *cobra.Command, shell Shell) (string, error) {
	var buf bytes.Buffer
	if err := Generate(root, shell, &buf); err != nil {
		return "", fmt.Errorf("generating %s completion: %w", shell, err)
	}

	path := env.Path(shell)
	if err := fs.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return "", errors.WrapIO("mkdir", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// Uninstall removes the completion script for shell. The returned bool
// reports whether a file was present.
func Uninstall(fs afero.Fs, env Env, shell Shell) (string, bool, error) {
	path := env.Path(shell)
	info, err := fs.Stat(path)
	if err != nil || info.IsDir() {
		return path, false, nil
	}
	if err := fs.Remove(path); err != nil {
		return path, true, errors.WrapIO("remove", path, err)
	}
	return path, true, nil
}
