// Package finder runs spatial queries over a mesh's vertices: linear
// by-position/in-sphere scans (package mesh's registries hold only
// thousands of vertices, not cells, so O(n) is acceptable), plus an
// optional grid-bucketed SpatialIndex for callers that want faster
// repeated queries without any change to the query contract.
package finder
