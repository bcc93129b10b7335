package optimize

import (
	"github.com/hexcore/blockmesh/clamp"
	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/mesh"
	"github.com/hexcore/blockmesh/topo"
)

// release pairs a freed vertex with the clamp constraining its motion and
// the offset of its parameters within the concatenated parameter vector.
type release struct {
	vertex core.VertexID
	clamp  clamp.Clamp
	offset int
}

// Optimizer holds a Mesh and the set of vertices released for
// optimization, each bound to a Clamp restricting its motion.
type Optimizer struct {
	mesh     *mesh.Mesh
	releases []release
	settings settings
	history  []float64
}

// New builds an Optimizer over m with no released vertices; call Release
// to free vertices before Optimize.
func New(m *mesh.Mesh, opts ...Option) *Optimizer {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Optimizer{mesh: m, settings: s}
}

// Release frees vertex to move along c's manifold during Optimize. Calling
// Release again for the same vertex appends a second binding; callers
// should release each vertex at most once.
func (o *Optimizer) Release(vertex core.VertexID, c clamp.Clamp) {
	offset := 0
	for _, r := range o.releases {
		offset += r.clamp.NumParams()
	}
	o.releases = append(o.releases, release{vertex: vertex, clamp: c, offset: offset})
}

// History returns the best-Q-so-far value after each completed simplex
// iteration of the most recent Optimize call.
func (o *Optimizer) History() []float64 {
	return o.history
}

// Optimize runs the minimizer over every released vertex's concatenated
// parameters, moving vertices in place and transitioning the mesh to
// Optimized. It implicitly assembles and grades the mesh first. A mesh
// with no released vertices transitions directly without running the
// simplex.
func (o *Optimizer) Optimize() error {
	if err := o.mesh.EnsureGraded(); err != nil {
		return err
	}
	if len(o.releases) == 0 {
		o.mesh.MarkOptimized()
		return nil
	}

	vreg := o.mesh.VertexRegistry()
	affected := o.affectedBlocks()

	total := 0
	for _, r := range o.releases {
		total += r.clamp.NumParams()
	}
	x0 := make([]float64, 0, total)
	for _, r := range o.releases {
		v := vreg.MustGet(r.vertex)
		x0 = append(x0, r.clamp.InitialParams(v.Position)...)
	}

	eval := func(x []float64) float64 {
		penalty := o.apply(x)
		return o.cost(affected) + penalty
	}

	best, history := nelderMead(x0, eval, o.settings.maxIterations, o.settings.windowSize, o.settings.minImprove)
	o.apply(best)
	o.history = history
	o.mesh.MarkOptimized()

	final := 0.0
	if len(history) > 0 {
		final = history[len(history)-1]
	}
	o.settings.log("optimize: stopped after %d iterations, Q=%g", len(history), final)
	return nil
}

// apply writes the positions x implies (per released clamp) into the
// mesh's vertex registry, clamping any out-of-bounds parameter to its
// nearest bound and returning a penalty proportional to the violation. The
// simplex never rejects a move outright, so this penalty barrier is what
// keeps it away from a clamp's bounds.
func (o *Optimizer) apply(x []float64) float64 {
	vreg := o.mesh.VertexRegistry()
	penalty := 0.0
	for _, r := range o.releases {
		n := r.clamp.NumParams()
		params := append([]float64(nil), x[r.offset:r.offset+n]...)
		lo, hi := r.clamp.Bounds()
		for i := range params {
			if lo != nil && params[i] < lo[i] {
				penalty += (lo[i] - params[i]) * 1e3
				params[i] = lo[i]
			}
			if hi != nil && params[i] > hi[i] {
				penalty += (params[i] - hi[i]) * 1e3
				params[i] = hi[i]
			}
		}
		vreg.SetPosition(r.vertex, r.clamp.PointAt(params))
	}
	return penalty
}

// cost sums blockCost over affected, the set of blocks touching any
// released vertex; Optimize never re-scores the rest of the mesh.
func (o *Optimizer) cost(affected []*topo.Block) float64 {
	vreg := o.mesh.VertexRegistry()
	total := 0.0
	for _, b := range affected {
		total += blockCost(vreg, b)
	}
	return total
}

// affectedBlocks returns every block with at least one corner among the
// released vertices.
func (o *Optimizer) affectedBlocks() []*topo.Block {
	released := make(map[core.VertexID]struct{}, len(o.releases))
	for _, r := range o.releases {
		released[r.vertex] = struct{}{}
	}

	var affected []*topo.Block
	for _, b := range o.mesh.Blocks() {
		for _, v := range b.Vertices {
			if _, ok := released[v]; ok {
				affected = append(affected, b)
				break
			}
		}
	}
	return affected
}
