package newick

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tjvneste/Tree-visualization/phylo"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.nwk")
	require.NoError(t, os.WriteFile(path,
		[]byte("((A:0.0001,B:0.0001)N1:0.5,C:0.5)Root;\n"), 0o644))

	tree, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, tree.Stats().Leaves)
	require.NotNil(t, tree.Find("A"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.nwk"))
	require.Error(t, err)

	var perr *phylo.Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, phylo.ErrKindIO, perr.Kind)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.nwk")
	require.NoError(t, os.WriteFile(path, []byte("((A,B;"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var perr *phylo.Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, phylo.ErrKindParse, perr.Kind)
}

func TestWriteFileRoundTrip(t *testing.T) {
	tree, err := ParseString("(A:0.1,B:0.2)R;")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.nwk")
	require.NoError(t, WriteFile(path, tree))

	back, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "R", back.Root.Name)
	require.Equal(t, 2, back.Stats().Leaves)
}
