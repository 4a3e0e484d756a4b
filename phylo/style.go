package phylo

// Class partitions surviving leaves into the three rendering categories.
type Class int

const (
	// ClassDefault marks leaves that are neither type nor sample strains.
	ClassDefault Class = iota
	// ClassSampleStrain marks leaves named in the sample-strain set.
	ClassSampleStrain
	// ClassTypeStrain marks leaves named in the type-strain set. Type
	// classification wins when a name appears in both sets.
	ClassTypeStrain
)

// String returns the class name used in JSON output and legends.
func (c Class) String() string {
	switch c {
	case ClassTypeStrain:
		return "type-strain"
	case ClassSampleStrain:
		return "sample-strain"
	default:
		return "default"
	}
}

// Shape selects the marker drawn at a leaf.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSphere
)

// LinePattern selects the stroke pattern of the line connecting a node to
// its parent.
type LinePattern int

const (
	LineSolid LinePattern = iota
	LineDashed
	LineDotted
)

// Style is the fixed set of visual attributes attached to a classified
// leaf. There are exactly three instances, one per Class; renderers branch
// on the fields, never on ad hoc keys.
type Style struct {
	Class     Class
	Shape     Shape
	FillColor string
	Size      int
	Line      LinePattern
}

// StyleFor returns the rendering style for a leaf class.
func StyleFor(c Class) Style {
	switch c {
	case ClassTypeStrain:
		return Style{
			Class:     ClassTypeStrain,
			Shape:     ShapeCircle,
			FillColor: "#000000",
			Size:      10,
			Line:      LineDashed,
		}
	case ClassSampleStrain:
		return Style{
			Class:     ClassSampleStrain,
			Shape:     ShapeCircle,
			FillColor: "#14e05c",
			Size:      15,
			Line:      LineDotted,
		}
	default:
		return Style{
			Class:     ClassDefault,
			Shape:     ShapeSphere,
			FillColor: "darkred",
			Size:      5,
			Line:      LineSolid,
		}
	}
}
