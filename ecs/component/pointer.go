package component

// Pointer is the last known pointer position. Front-ends and pointer sources
// overwrite it; systems only read it. Sampled stays false until a source has
// reported a position, and until then the pointer tracks the surface centre.
type Pointer struct {
	X       float64
	Y       float64
	Sampled bool
}

var PointerComponent = NewComponent[Pointer]()
