package patch

import (
	"fmt"

	"github.com/hexcore/blockmesh/topo"
)

// Type is a boundary condition kind understood by the downstream mesher.
type Type string

const (
	TypePatch         Type = "patch"
	TypeWall          Type = "wall"
	TypeEmpty         Type = "empty"
	TypeWedge         Type = "wedge"
	TypeSymmetryPlane Type = "symmetryPlane"
)

// Side identifies one outer face of one block.
type Side struct {
	Block       topo.BlockID
	Orientation topo.Orientation
}

// Patch is a named boundary patch: its type and the ordered list of block
// sides assigned to it, in the order they were assigned. Writers depend on
// this order being stable and deterministic across runs.
type Patch struct {
	Name  string
	Type  Type
	Sides []Side
}

// List owns every named patch, the merged master/slave pairs, and the
// default patch, in insertion order.
type List struct {
	order   []string
	patches map[string]*Patch
	merged  [][2]string
	dflt    *Patch
}

// NewList builds an empty patch List.
func NewList() *List {
	return &List{patches: make(map[string]*Patch)}
}

// Assign records that side belongs to the named patch, creating the patch
// with TypePatch if it doesn't exist yet. ErrPatchConflict if side was
// already assigned to a different patch name.
func (l *List) Assign(side Side, name string) error {
	for _, p := range l.patches {
		if p.Name == name {
			continue
		}
		for _, s := range p.Sides {
			if s == side {
				return fmt.Errorf("patch: side %+v already claimed by %q: %w", side, p.Name, ErrPatchConflict)
			}
		}
	}

	p, ok := l.patches[name]
	if !ok {
		p = &Patch{Name: name, Type: TypePatch}
		l.patches[name] = p
		l.order = append(l.order, name)
	}
	p.Sides = append(p.Sides, side)
	return nil
}

// ModifyPatch changes the type of an existing patch. ErrUnknownPatch if
// name was never assigned any side.
func (l *List) ModifyPatch(name string, t Type) error {
	p, ok := l.patches[name]
	if !ok {
		return fmt.Errorf("patch: %q: %w", name, ErrUnknownPatch)
	}
	p.Type = t
	return nil
}

// MergePatches records master/slave as a coincident-face pair to be
// stitched by the downstream mesher's mergePatchPairs mechanism.
func (l *List) MergePatches(master, slave string) error {
	if _, ok := l.patches[master]; !ok {
		return fmt.Errorf("patch: master %q: %w", master, ErrUnknownPatch)
	}
	if _, ok := l.patches[slave]; !ok {
		return fmt.Errorf("patch: slave %q: %w", slave, ErrUnknownPatch)
	}
	l.merged = append(l.merged, [2]string{master, slave})
	return nil
}

// SetDefaultPatch designates name/t as the catch-all patch for any block
// side left unassigned at write time. name need not already exist; it is
// created with no sides if new.
func (l *List) SetDefaultPatch(name string, t Type) {
	p, ok := l.patches[name]
	if !ok {
		p = &Patch{Name: name, Type: t}
		l.patches[name] = p
		l.order = append(l.order, name)
	} else {
		p.Type = t
	}
	l.dflt = p
}

// DefaultPatch returns the designated default patch, or nil if none was set.
func (l *List) DefaultPatch() *Patch {
	return l.dflt
}

// Patches returns every patch in insertion order.
func (l *List) Patches() []*Patch {
	out := make([]*Patch, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.patches[name])
	}
	return out
}

// MergedPairs returns every (master, slave) pair in declaration order.
func (l *List) MergedPairs() [][2]string {
	return l.merged
}

// Get returns the named patch, or nil if unknown.
func (l *List) Get(name string) *Patch {
	return l.patches[name]
}
