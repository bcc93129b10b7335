package topo

import (
	"fmt"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/grading"
)

// Axis is one of a Block's three local directions (0, 1, 2): the four
// wires running along it, the user's chop declarations, and the sets of
// neighbouring / sequential axes discovered as blocks are added to the
// mesh. Grading propagation (package axis) operates on these structures
// but does not live here, to avoid a package cycle with Wire/Block.
type Axis struct {
	Index int
	Wires [4]*Wire
	Chops []grading.Chop

	neighbours map[*Axis]struct{}
	sequential map[*Axis]struct{}
}

// AddNeighbour links other to a as a neighbour if they share at least one
// coincident wire.
func (a *Axis) AddNeighbour(other *Axis) {
	if a == other {
		return
	}
	for _, w := range a.Wires {
		for _, ow := range other.Wires {
			if w.IsCoincident(ow) {
				if a.neighbours == nil {
					a.neighbours = make(map[*Axis]struct{})
				}
				a.neighbours[other] = struct{}{}
				return
			}
		}
	}
}

// AddSequential links other to a as a sequential (stacked end-to-end) axis
// if one's start-vertex set equals the other's end-vertex set.
func (a *Axis) AddSequential(other *Axis) {
	if a == other {
		return
	}
	if setEqual(a.StartVertices(), other.EndVertices()) || setEqual(a.EndVertices(), other.StartVertices()) {
		if a.sequential == nil {
			a.sequential = make(map[*Axis]struct{})
		}
		a.sequential[other] = struct{}{}
	}
}

// Neighbours returns every axis sharing at least one coincident wire with a.
func (a *Axis) Neighbours() []*Axis {
	out := make([]*Axis, 0, len(a.neighbours))
	for n := range a.neighbours {
		out = append(out, n)
	}
	return out
}

// Sequential returns every axis stacked end-to-end with a.
func (a *Axis) Sequential() []*Axis {
	out := make([]*Axis, 0, len(a.sequential))
	for n := range a.sequential {
		out = append(out, n)
	}
	return out
}

// IsAligned reports whether other's wires are aligned to a's, based on
// their first shared coincident wire pair. Returns an error if a and
// other share no coincident wire at all.
func (a *Axis) IsAligned(other *Axis) (bool, error) {
	for _, w := range a.Wires {
		for _, ow := range other.Wires {
			if w.IsCoincident(ow) {
				return w.IsAligned(ow), nil
			}
		}
	}
	return false, fmt.Errorf("topo: axes are not neighbours")
}

// StartVertices returns the set of each wire's first vertex.
func (a *Axis) StartVertices() map[core.VertexID]struct{} {
	set := make(map[core.VertexID]struct{}, 4)
	for _, w := range a.Wires {
		set[w.Vertices[0]] = struct{}{}
	}
	return set
}

// EndVertices returns the set of each wire's second vertex.
func (a *Axis) EndVertices() map[core.VertexID]struct{} {
	set := make(map[core.VertexID]struct{}, 4)
	for _, w := range a.Wires {
		set[w.Vertices[1]] = struct{}{}
	}
	return set
}

// Lengths returns the raw (pre-grading) edge length of each of a's four
// wires, in wire order.
func (a *Axis) Lengths() [4]float64 {
	var out [4]float64
	for i, w := range a.Wires {
		out[i] = w.Length
	}
	return out
}

// IsDefined reports whether all four wires carry a defined grading.
func (a *Axis) IsDefined() bool {
	for _, w := range a.Wires {
		if !w.Grading.IsDefined() {
			return false
		}
	}
	return true
}

func setEqual(a, b map[core.VertexID]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
