// Package optimize runs a derivative-free minimization of mesh quality
// over a set of released clamp parameters.
//
// Optimizer concatenates the parameter vectors of every released Clamp
// into one flat vector and minimizes a scalar cost Q using a Nelder-Mead
// simplex, the standard choice when Q is not differentiable (it is built
// from per-block angle and ratio metrics, not a smooth closed form). Only
// blocks adjacent to a released vertex are re-scored on each evaluation,
// so the cost of one iteration scales with the release set, not the mesh.
package optimize
