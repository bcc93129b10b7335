package mesh

import (
	"fmt"

	"github.com/hexcore/blockmesh/axis"
	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/operation"
	"github.com/hexcore/blockmesh/patch"
	"github.com/hexcore/blockmesh/topo"
)

// Mesh owns every registry a mesh needs and drives the lifecycle state
// machine described in state.go. It is a process-local object: a single
// mutator owns it at a time, so no internal locking is needed.
type Mesh struct {
	settings Settings
	state    State

	vreg    *core.VertexRegistry
	ereg    *core.EdgeRegistry
	blocks  *topo.BlockList
	patches *patch.List
}

// New builds an empty Mesh with DefaultSettings plus any overriding
// Options.
func New(opts ...Option) *Mesh {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	cfg := core.NewConfig(core.WithTolerance(s.Tolerance))
	vreg := core.NewVertexRegistry(cfg)
	return &Mesh{
		settings: s,
		state:    Empty,
		vreg:     vreg,
		ereg:     core.NewEdgeRegistry(vreg),
		blocks:   topo.NewBlockList(),
		patches:  patch.NewList(),
	}
}

// Add converts each operation to a Block (registering its vertices and
// edges) and adds it to the mesh's block list, wiring coincidence and
// axis neighbor/sequential links against every prior block. Valid only in
// Empty or Building; ErrMeshFrozen otherwise.
func (m *Mesh) Add(ops ...operation.Operation) error {
	if m.state != Empty && m.state != Building {
		return ErrMeshFrozen
	}

	for _, op := range ops {
		id := topo.BlockID(m.blocks.Len())
		block, err := op.ToBlock(m.vreg, m.ereg, id)
		if err != nil {
			return err
		}
		m.blocks.Add(block)
		// Iterate orientations in a fixed order, not block.Patches' map
		// order, so patch-side assignment (and thus the writer's output)
		// is deterministic for a given input sequence.
		for orient := topo.Bottom; orient <= topo.Right; orient++ {
			name, ok := block.Patches[orient]
			if !ok {
				continue
			}
			if err := m.patches.Assign(patch.Side{Block: id, Orientation: orient}, name); err != nil {
				return err
			}
		}
		m.settings.Log("mesh: added block %d (%d vertices, %d edges so far)", id, m.vreg.Len(), m.ereg.Len())
	}

	if m.state == Empty {
		m.state = Building
	}
	return nil
}

// Assemble transitions the mesh from Building to Assembled. Deduplication
// and the axis neighbor graph are already kept current incrementally by
// Add, so Assemble is otherwise a pure state transition; it is a no-op if
// the mesh is already Assembled or further along.
func (m *Mesh) Assemble() error {
	if m.state == Empty {
		m.state = Assembled
		return nil
	}
	if m.state == Building {
		m.state = Assembled
		m.settings.Log("mesh: assembled %d blocks", m.blocks.Len())
	}
	return nil
}

// Grade runs grading propagation over every block's axes and transitions
// to Graded. It implicitly assembles first if needed.
func (m *Mesh) Grade(opts ...axis.Option) error {
	if err := m.Assemble(); err != nil {
		return err
	}
	if m.state == Graded || m.state == Optimized || m.state == Written {
		return nil
	}

	if err := axis.Propagate(m.blocks.Axes(), opts...); err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	m.state = Graded
	m.settings.Log("mesh: grading propagation complete")
	return nil
}

// EnsureGraded assembles and grades the mesh if it hasn't been already.
// Write and Optimize both call this so callers never have to sequence the
// lifecycle calls by hand.
func (m *Mesh) EnsureGraded() error {
	return m.Grade()
}

// MarkWritten transitions the mesh to Written; called by package writer
// after a successful emission.
func (m *Mesh) MarkWritten() {
	m.state = Written
}

// MarkOptimized transitions the mesh to Optimized; called by
// package optimize after a successful vertex-optimization pass. It is a
// no-op if the mesh is already Written, since Written is a strictly later
// stage in the lifecycle.
func (m *Mesh) MarkOptimized() {
	if m.state == Written {
		return
	}
	m.state = Optimized
}

// SetDefaultPatch designates the catch-all patch for any block side left
// unassigned at write time.
func (m *Mesh) SetDefaultPatch(name string, t patch.Type) {
	m.patches.SetDefaultPatch(name, t)
}

// ModifyPatch changes the type of an existing patch.
func (m *Mesh) ModifyPatch(name string, t patch.Type) error {
	return m.patches.ModifyPatch(name, t)
}

// MergePatches records master/slave as a coincident-face pair.
func (m *Mesh) MergePatches(master, slave string) error {
	return m.patches.MergePatches(master, slave)
}

// State returns the mesh's current lifecycle stage.
func (m *Mesh) State() State {
	return m.state
}

// Settings returns the mesh's configuration.
func (m *Mesh) Settings() Settings {
	return m.settings
}

// Vertices returns every registered vertex in creation order.
func (m *Mesh) Vertices() []*core.Vertex {
	return m.vreg.All()
}

// Edges returns every registered edge in creation order.
func (m *Mesh) Edges() []*core.Edge {
	return m.ereg.All()
}

// Blocks returns every block in insertion order.
func (m *Mesh) Blocks() []*topo.Block {
	return m.blocks.Blocks()
}

// Patches returns the mesh's patch list.
func (m *Mesh) Patches() *patch.List {
	return m.patches
}

// VertexRegistry exposes the underlying registry for packages (finder,
// optimize) that need direct, mutable access to vertex positions.
func (m *Mesh) VertexRegistry() *core.VertexRegistry {
	return m.vreg
}
