package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExamples generates every descriptor file under examples/.
func TestExamples(t *testing.T) {
	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	inputs, err := filepath.Glob(filepath.Join(repoRoot, "examples", "*", "types.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	for _, input := range inputs {
		t.Run(filepath.Base(filepath.Dir(input)), func(t *testing.T) {
			t.Parallel()

			out := t.TempDir()

			res, err := New(Config{Input: input, OutputDir: out}, nil).Run(t.Context())
			require.NoError(t, err)
			require.NotEmpty(t, res.Files)

			for _, f := range res.Files {
				data, err := os.ReadFile(filepath.Join(out, f.Filename))
				require.NoError(t, err)
				assert.Equal(t, f.Content, data)
			}
		})
	}
}
