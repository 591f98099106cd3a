package component

// SpineNode is one link of the spine. Heading is the angle from this node to
// its predecessor, refreshed every frame; node 0 keeps whatever it was built
// with.
type SpineNode struct {
	X       float64
	Y       float64
	Heading float64
}

// Spine is a fixed-length chain. Node 0 eases toward the pointer by Damping
// of the remaining offset each frame; every other node sits exactly Spacing
// away from its predecessor.
type Spine struct {
	Nodes       []SpineNode
	Spacing     float64
	Damping     float64
	ColorRadius float64
}

// Head returns node 0.
func (s *Spine) Head() SpineNode {
	if s == nil || len(s.Nodes) == 0 {
		return SpineNode{}
	}
	return s.Nodes[0]
}

var SpineComponent = NewComponent[Spine]()
