package topo

import (
	"fmt"

	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/grading"
)

// Wire is one of the twelve directed block-edges of a hex: two corner
// indices (0..7), the Vertex pair they resolve to, the core.Edge carrying
// its curve kind and raw length, and the Grading resolved for it.
type Wire struct {
	Corners  [2]int
	Vertices [2]core.VertexID
	Edge     core.EdgeID
	Length   float64
	Grading  grading.Grading

	// Axis is the owning Axis (one of the block's three); set by NewBlock.
	Axis *Axis

	// coincidents holds every other Wire (in any block) sharing this
	// wire's vertex set, keyed by identity.
	coincidents map[*Wire]struct{}
}

// IsValid reports whether the wire's two corners resolved to distinct
// vertices; a pair with two equal vertices is useless and indicates a
// degenerate block.
func (w *Wire) IsValid() bool {
	return w.Vertices[0] != w.Vertices[1]
}

// IsCoincident reports whether w and other occupy the same spot in space,
// regardless of direction.
func (w *Wire) IsCoincident(other *Wire) bool {
	return (w.Vertices == other.Vertices) ||
		(w.Vertices[0] == other.Vertices[1] && w.Vertices[1] == other.Vertices[0])
}

// IsAligned reports whether w and other have the same direction. It
// panics if the two wires are not coincident: that is a programmer error,
// not a domain error worth a return value for.
func (w *Wire) IsAligned(other *Wire) bool {
	if !w.IsCoincident(other) {
		panic("topo: IsAligned called on non-coincident wires")
	}
	return w.Vertices == other.Vertices
}

// AddCoincident records a mutual coincidence link between w and other if
// they occupy the same spot; it is a no-op otherwise.
func (w *Wire) AddCoincident(other *Wire) {
	if w == other || !w.IsCoincident(other) {
		return
	}
	if w.coincidents == nil {
		w.coincidents = make(map[*Wire]struct{})
	}
	w.coincidents[other] = struct{}{}
}

// Coincidents returns every other wire known to occupy the same spot as w.
func (w *Wire) Coincidents() []*Wire {
	out := make([]*Wire, 0, len(w.coincidents))
	for c := range w.coincidents {
		out = append(out, c)
	}
	return out
}

func (w *Wire) String() string {
	return fmt.Sprintf("wire(%d,%d) verts=%v", w.Corners[0], w.Corners[1], w.Vertices)
}
