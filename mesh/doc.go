// Package mesh owns the vertex/edge registries, the block list, the
// patch list and global settings, and drives the Mesh lifecycle state
// machine (Empty -> Building -> Assembled -> Graded -> Written, with
// Optimized as an optional side branch between Graded and Written).
package mesh
