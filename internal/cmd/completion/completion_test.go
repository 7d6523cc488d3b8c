package completion

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoatlas/autoatlas/pkg/errors"
)

func TestParseShell(t *testing.T) {
	for _, name := range ValidArgs() {
		s, err := ParseShell(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(s))
	}

	_, err := ParseShell("powershell")
	assert.True(t, errors.IsValidationError(err))
}

func TestEnvPath(t *testing.T) {
	tests := []struct {
		name  string
		env   Env
		shell Shell
		want  string
	}{
		{"bash home", Env{Home: "/home/u"}, Bash, "/home/u/.bash_completion.d/autoatlas"},
		{"bash brew", Env{Home: "/home/u", Brew: "/opt/homebrew"}, Bash, "/opt/homebrew/etc/bash_completion.d/autoatlas"},
		{"zsh home", Env{Home: "/home/u"}, Zsh, "/home/u/.zsh/completions/_autoatlas"},
		{"zsh brew", Env{Brew: "/usr/local"}, Zsh, "/usr/local/share/zsh/site-functions/_autoatlas"},
		{"fish home", Env{Home: "/home/u"}, Fish, "/home/u/.config/fish/completions/autoatlas.fish"},
		{"fish brew", Env{Brew: "/opt/homebrew"}, Fish, "/opt/homebrew/share/fish/vendor_completions.d/autoatlas.fish"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.env.Path(tt.shell))
		})
	}
}

func TestInstallAndUninstall(t *testing.T) {
	fs := afero.NewMemMapFs()
	env := Env{Home: "/home/u"}
	root := &cobra.Command{Use: "autoatlas"}
	root.AddCommand(&cobra.Command{Use: "brands", Run: func(*cobra.Command, []string) {}})

	for _, shell := range Shells() {
		t.Run(string(shell), func(t *testing.T) {
			path, err := Install(fs, env, root, shell)
			require.NoError(t, err)

			content, err := afero.ReadFile(fs, path)
			require.NoError(t, err)
			assert.Contains(t, string(content), "autoatlas")

			_, found, err := Uninstall(fs, env, shell)
			require.NoError(t, err)
			assert.True(t, found)

			exists, _ := afero.Exists(fs, path)
			assert.False(t, exists)

			_, found, err = Uninstall(fs, env, shell)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestGenerate(t *testing.T) {
	root := &cobra.Command{Use: "autoatlas"}
	var buf bytes.Buffer
	require.NoError(t, Generate(root, Zsh, &buf))
	assert.Contains(t, buf.String(), "#compdef autoatlas")

	assert.Error(t, Generate(root, Shell("csh"), &buf))
}
