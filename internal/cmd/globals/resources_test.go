package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResources(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	AddResourceFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--search", "bm", "-l", "3"}))

	flags := ParseResources(cmd)
	assert.Equal(t, "bm", flags.Search)
	assert.Equal(t, 3, flags.Limit)
}

func TestLimit(t *testing.T) {
	items := []int{1, 2, 3, 4}
	assert.Equal(t, []int{1, 2}, Limit(items, 2))
	assert.Equal(t, items, Limit(items, 0))
	assert.Equal(t, items, Limit(items, 10))
}
