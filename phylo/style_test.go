package phylo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleFor(t *testing.T) {
	tests := []struct {
		class Class
		shape Shape
		fill  string
		size  int
		line  LinePattern
	}{
		{ClassTypeStrain, ShapeCircle, "#000000", 10, LineDashed},
		{ClassSampleStrain, ShapeCircle, "#14e05c", 15, LineDotted},
		{ClassDefault, ShapeSphere, "darkred", 5, LineSolid},
	}
	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			s := StyleFor(tt.class)
			require.Equal(t, tt.class, s.Class)
			require.Equal(t, tt.shape, s.Shape)
			require.Equal(t, tt.fill, s.FillColor)
			require.Equal(t, tt.size, s.Size)
			require.Equal(t, tt.line, s.Line)
		})
	}
}

func TestClassString(t *testing.T) {
	require.Equal(t, "type-strain", ClassTypeStrain.String())
	require.Equal(t, "sample-strain", ClassSampleStrain.String())
	require.Equal(t, "default", ClassDefault.String())
}
