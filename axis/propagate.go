package axis

import (
	"fmt"

	"github.com/hexcore/blockmesh/grading"
	"github.com/hexcore/blockmesh/topo"
)

// Propagate resolves a defined grading for every wire of every axis in
// axes. It repeats passes over axes until every axis is defined (success)
// or a pass makes no progress (ErrUndefinedGradings).
// On success it additionally checks that every axis's four wires, and
// every pair of neighboring axes, agree on cell count
// (ErrInconsistentGradings otherwise).
func Propagate(axes []*topo.Axis, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for {
		progress := false
		allDefined := true
		for _, a := range axes {
			if a.IsDefined() {
				continue
			}
			switch {
			case copyFromOwnWire(a):
				o.log("axis %d: copied grading from a defined wire", a.Index)
				progress = true
			case len(a.Chops) > 0:
				if err := buildFromChops(a); err != nil {
					return err
				}
				o.log("axis %d: built grading from %d chop(s)", a.Index, len(a.Chops))
				progress = true
			case copyFromNeighbour(a):
				o.log("axis %d: copied grading from a neighboring axis", a.Index)
				progress = true
			}
			if !a.IsDefined() {
				allDefined = false
			}
		}
		if allDefined {
			break
		}
		if !progress {
			return ErrUndefinedGradings
		}
	}

	return checkConsistency(axes)
}

// copyFromOwnWire copies a's own defined wire grading onto its other three
// wires, rescaled to each wire's length, if at least one is already
// defined. All four wires of a canonical axis are built in the same
// direction (see topo's canonical corner-pair schema), so no inversion is
// needed within a single axis.
func copyFromOwnWire(a *topo.Axis) bool {
	var source grading.Grading
	found := false
	for _, w := range a.Wires {
		if w.Grading.IsDefined() {
			source = w.Grading
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, w := range a.Wires {
		if !w.Grading.IsDefined() {
			w.Grading = source.Rescale(w.Length)
		}
	}
	return true
}

// buildFromChops builds a Grading from a's chops against the axis length
// selected by the chops' Take mode (defaulting to avg), then instantiates
// a copy on every wire rescaled to its own length, preserving count.
func buildFromChops(a *topo.Axis) error {
	take := grading.TakeAvg
	if len(a.Chops) > 0 && a.Chops[0].Take != "" {
		take = a.Chops[0].Take
	}

	lengths := a.Lengths()
	axisLength := selectLength(lengths, take)

	g, err := grading.BuildGrading(axisLength, a.Chops)
	if err != nil {
		return fmt.Errorf("axis %d: %w", a.Index, err)
	}
	for _, w := range a.Wires {
		w.Grading = g.Rescale(w.Length)
	}
	return nil
}

func selectLength(lengths [4]float64, take grading.Take) float64 {
	switch take {
	case grading.TakeMin:
		m := lengths[0]
		for _, l := range lengths[1:] {
			if l < m {
				m = l
			}
		}
		return m
	case grading.TakeMax:
		m := lengths[0]
		for _, l := range lengths[1:] {
			if l > m {
				m = l
			}
		}
		return m
	default: // TakeAvg
		sum := 0.0
		for _, l := range lengths {
			sum += l
		}
		return sum / float64(len(lengths))
	}
}

// copyFromNeighbour walks a's neighbor and sequential links breadth-first
// (a visited set plus an explicit queue) looking for the nearest axis that
// is already defined, composing alignment flips along the path. A neighbor
// step flips alignment when the shared wire runs the other way; a
// sequential step (one axis's end-vertex set is the other's start-vertex
// set) keeps it. If one is found, its grading is copied onto a's wires,
// inverted if the accumulated path is anti-aligned, rescaled per wire
// length.
func copyFromNeighbour(a *topo.Axis) bool {
	type queued struct {
		axis     *topo.Axis
		inverted bool
	}

	visited := map[*topo.Axis]bool{a: true}
	queue := []queued{{a, false}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range append(cur.axis.Neighbours(), cur.axis.Sequential()...) {
			if visited[n] {
				continue
			}
			visited[n] = true

			inverted := cur.inverted
			if aligned, err := cur.axis.IsAligned(n); err == nil && !aligned {
				inverted = !inverted
			}

			if n.IsDefined() {
				applyNeighbourGrading(a, n, inverted)
				return true
			}
			queue = append(queue, queued{n, inverted})
		}
	}
	return false
}

func applyNeighbourGrading(a, source *topo.Axis, inverted bool) {
	g := source.Wires[0].Grading
	if inverted {
		g = g.Invert()
	}
	for _, w := range a.Wires {
		w.Grading = g.Rescale(w.Length)
	}
}

func checkConsistency(axes []*topo.Axis) error {
	for _, a := range axes {
		baseline := a.Wires[0].Grading.Count()
		for _, w := range a.Wires[1:] {
			if w.Grading.Count() != baseline {
				return fmt.Errorf("axis %d: %w", a.Index, ErrInconsistentGradings)
			}
		}
		for _, n := range a.Neighbours() {
			if n.Wires[0].Grading.Count() != baseline {
				return fmt.Errorf("axis %d vs %d: %w", a.Index, n.Index, ErrInconsistentGradings)
			}
		}
	}
	return nil
}
