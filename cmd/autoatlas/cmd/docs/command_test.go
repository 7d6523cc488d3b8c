package docs

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoatlas/autoatlas/internal/cmd/application"
	"github.com/autoatlas/autoatlas/pkg/errors"
)

func TestGenerateDocs(t *testing.T) {
	mock, fs := application.NewFixture(t)
	cmd := NewCommand(mock)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--output", "site", "--lang", "en"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Wrote 13 pages (2 brands, 8 tiers) to site")

	for _, path := range []string{
		"site/catalog/_index.md",
		"site/catalog/brands/lotus.md",
		"site/catalog/tiers/nivel-1.md",
	} {
		ok, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, ok, path)
	}
}

func TestGenerateDocsRejectsLanguage(t *testing.T) {
	mock, _ := application.NewFixture(t)
	cmd := NewCommand(mock)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--lang", "fr"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
