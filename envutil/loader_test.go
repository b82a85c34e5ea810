package envutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestLoader_LoadFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		contents string
	}{
		{
			name:     "dotenv",
			file:     "bench.env",
			contents: "# comment\nSORTBENCH_SIZE=250\nexport SORTBENCH_DIRECTION=\"desc\"\n",
		},
		{
			name:     "json",
			file:     "bench.json",
			contents: `{"env": {"SORTBENCH_SIZE": "250", "SORTBENCH_DIRECTION": "desc"}}`,
		},
		{
			name:     "yaml",
			file:     "bench.yaml",
			contents: "env:\n  SORTBENCH_SIZE: \"250\"\n  SORTBENCH_DIRECTION: desc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ldr := NewLoader()

			count, err := ldr.LoadFile(writeFile(t, tt.file, tt.contents))
			require.NoError(t, err)
			assert.Equal(t, int64(2), count)
			assert.Equal(t, []string{"SORTBENCH_DIRECTION", "SORTBENCH_SIZE"}, ldr.Keys())

			ctx := ldr.EnhanceContext(t.Context())

			size, err := Int[int](ctx, "SORTBENCH_SIZE").Value()
			require.NoError(t, err)
			assert.Equal(t, 250, size)
		})
	}
}

func TestLoader_UnknownFileType(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().LoadFile(writeFile(t, "bench.toml", "size = 1"))
	require.ErrorIs(t, err, ErrUnknownFileType)

	_, err = NewLoader().LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoader_Mutation(t *testing.T) {
	t.Parallel()

	ldr := NewLoader()
	ldr.Set("A", "1")
	ldr.Set("B", "2")
	ldr.Delete("A")

	_, ok := ldr.Get("A")
	assert.False(t, ok)

	val, ok := ldr.Get("B")
	assert.True(t, ok)
	assert.Equal(t, "2", val)
}

func TestLoader_LoadEnv(t *testing.T) { //nolint:paralleltest
	t.Setenv("ENVUTIL_LOADER_PROCESS", "from-process")

	ldr := NewLoader()
	ldr.LoadEnv()

	val, ok := ldr.Get("ENVUTIL_LOADER_PROCESS")
	assert.True(t, ok)
	assert.Equal(t, "from-process", val)
}
