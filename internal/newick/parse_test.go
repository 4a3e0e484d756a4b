package newick

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tjvneste/Tree-visualization/phylo"
)

func TestParseSimple(t *testing.T) {
	tree, err := ParseString("((A:0.0001,B:0.0001)N1:0.5,C:0.5)Root;")
	require.NoError(t, err)

	root := tree.Root
	require.Equal(t, "Root", root.Name)
	require.Len(t, root.Children, 2)

	n1 := root.Children[0]
	require.Equal(t, "N1", n1.Name)
	require.InDelta(t, 0.5, n1.Dist, 1e-12)
	require.Len(t, n1.Children, 2)
	require.Equal(t, "A", n1.Children[0].Name)
	require.InDelta(t, 0.0001, n1.Children[0].Dist, 1e-12)
	require.Equal(t, "B", n1.Children[1].Name)

	c := root.Children[1]
	require.Equal(t, "C", c.Name)
	require.True(t, c.IsLeaf())
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		leaves int
		nodes  int
	}{
		{"single leaf", "A;", 1, 1},
		{"no labels", "(,);", 2, 3},
		{"no lengths", "(A,B,(X,Y)C)ROOT;", 4, 6},
		{"nested", "(((one:1,two:2):0.5,three:3):0.1,four:4)root:0;", 4, 7},
		{"whitespace", "( A : 0.1 ,\n  B : 0.2 ) ;", 2, 3},
		{"scientific notation", "(A:1e-4,B:2.5E-3);", 2, 3},
		{"negative length", "(A:-0.01,B:0.5);", 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := ParseString(tt.src)
			require.NoError(t, err)
			stats := tree.Stats()
			require.Equal(t, tt.leaves, stats.Leaves)
			require.Equal(t, tt.nodes, stats.Nodes)
		})
	}
}

func TestParseQuotedLabels(t *testing.T) {
	tree, err := ParseString("('Porcine parvovirus (BEL)':0.1,'it''s':0.2)Root;")
	require.NoError(t, err)
	require.Equal(t, "Porcine parvovirus (BEL)", tree.Root.Children[0].Name)
	require.Equal(t, "it's", tree.Root.Children[1].Name)
}

func TestParseStrainNames(t *testing.T) {
	tree, err := ParseString("(Porcine_parvovirus_1_1-0004394_BEL_Dec2022_30X:0.002,PPV1_IDT_DEU_1964:0.001)R;")
	require.NoError(t, err)
	require.NotNil(t, tree.Find("Porcine_parvovirus_1_1-0004394_BEL_Dec2022_30X"))
	require.NotNil(t, tree.Find("PPV1_IDT_DEU_1964"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"whitespace only", "  \n "},
		{"missing terminal", "(A,B)"},
		{"unbalanced", "((A,B;"},
		{"bad length", "(A:x,B);"},
		{"missing length", "(A:,B);"},
		{"trailing garbage", "(A,B); extra"},
		{"second tree", "(A,B);(C,D);"},
		{"unterminated quote", "('A,B);"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src)
			require.Error(t, err)

			var perr *phylo.Error
			require.True(t, errors.As(err, &perr))
			require.Equal(t, phylo.ErrKindParse, perr.Kind)
		})
	}
}

func TestParseErrorReportsLine(t *testing.T) {
	_, err := ParseString("(A:0.1,\nB:oops);")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}
