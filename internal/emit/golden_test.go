package emit

import (
	"flag"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"gc-derive/internal/derive"
	"gc-derive/internal/descriptor"
)

var update = flag.Bool("update", false, "rewrite golden archives in testdata")

const goldenInput = "descriptors.yaml"

// TestGolden renders every archive's descriptor file and compares each
// output file with the archive member of the same name.
func TestGolden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			require.NoError(t, err)

			var input []byte

			want := make(map[string]string)

			for _, f := range ar.Files {
				if f.Name == goldenInput {
					input = f.Data
					continue
				}

				want[f.Name] = string(f.Data)
			}

			require.NotNil(t, input, "archive has no %s", goldenInput)

			got := renderArchive(t, input)

			if *update {
				ar.Files = []txtar.File{{Name: goldenInput, Data: input}}
				for _, name := range sortedKeys(got) {
					ar.Files = append(ar.Files, txtar.File{Name: name, Data: []byte(got[name])})
				}

				require.NoError(t, os.WriteFile(path, txtar.Format(ar), filePerm))

				return
			}

			assert.Equal(t, sortedKeys(want), sortedKeys(got), "generated file set")

			for name, text := range want {
				assert.Equal(t, text, got[name], "contents of %s", name)
			}
		})
	}
}

func renderArchive(t *testing.T, input []byte) map[string]string {
	t.Helper()

	f, err := descriptor.Parse(input)
	require.NoError(t, err)

	opts := derive.Options{
		Runtime:      f.Runtime,
		MarkerSuffix: f.MarkerSuffix,
		StrictNames:  f.StrictNames,
		TraceLeading: f.TraceLeading,
	}

	e := NewEmitter(Config{Source: goldenInput})
	out := make(map[string]string)

	for _, entry := range f.Types {
		caps, err := derive.ParseCapabilities(entry.Derive)
		require.NoError(t, err)

		blocks, err := derive.GenerateAll(entry.Descriptor, caps, opts)
		require.NoError(t, err)

		file, err := e.Generate(entry.Descriptor.Name, blocks)
		require.NoError(t, err)

		out[file.Filename] = string(file.Content)
	}

	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
