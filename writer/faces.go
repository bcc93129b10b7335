package writer

import "github.com/hexcore/blockmesh/topo"

// orientationCorners maps each block side to its four corner indices, in
// face-loop order, per the canonical corner numbering of topo.NewBlock.
var orientationCorners = map[topo.Orientation][4]int{
	topo.Bottom: {0, 1, 2, 3},
	topo.Top:    {4, 5, 6, 7},
	topo.Front:  {0, 4, 7, 3},
	topo.Back:   {1, 2, 6, 5},
	topo.Left:   {0, 1, 5, 4},
	topo.Right:  {3, 7, 6, 2},
}
