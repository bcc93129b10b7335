package finder

import (
	"github.com/hexcore/blockmesh/core"
	"github.com/hexcore/blockmesh/geom"
)

// ByPosition returns every vertex within radius of p, linear-scanning
// vertices.
func ByPosition(vertices []*core.Vertex, p geom.Vec3, radius float64) []*core.Vertex {
	out := make([]*core.Vertex, 0)
	for _, v := range vertices {
		if v.Position.Distance(p) <= radius {
			out = append(out, v)
		}
	}
	return out
}

// FindInSphere returns every vertex coincident with p, using
// core.DefaultTolerance as the default radius when radius <= 0.
func FindInSphere(vertices []*core.Vertex, p geom.Vec3, radius float64) []*core.Vertex {
	if radius <= 0 {
		radius = core.DefaultTolerance
	}
	return ByPosition(vertices, p, radius)
}
