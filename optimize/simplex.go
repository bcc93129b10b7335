package optimize

import "sort"

// nelderMead minimizes f over n-dimensional vectors starting from x0 using
// the standard Nelder-Mead simplex method: no gradient is available since
// f is built from angle/ratio metrics over a discrete mesh, not a smooth
// closed form, so a derivative-free method is required.
//
// Termination is either maxIterations, or a window-based stall: once
// window consecutive iterations fail to improve the best value by more
// than minImprove relative to its magnitude, the search stops early.
// Failing to improve further is a normal stopping condition, not an error.
//
// Returns the best point found and the history of best-so-far values, one
// per iteration, for callers that want to report progress or check
// monotonic improvement.
func nelderMead(x0 []float64, f func([]float64) float64, maxIterations, window int, minImprove float64) ([]float64, []float64) {
	n := len(x0)
	if n == 0 {
		return x0, []float64{f(x0)}
	}

	const (
		alpha = 1.0 // reflection
		gamma = 2.0 // expansion
		rho   = 0.5 // contraction
		sigma = 0.5 // shrink
	)

	simplex := make([][]float64, n+1)
	values := make([]float64, n+1)
	simplex[0] = append([]float64(nil), x0...)
	values[0] = f(simplex[0])
	for i := 0; i < n; i++ {
		p := append([]float64(nil), x0...)
		step := 0.1
		if p[i] != 0 {
			step = 0.1 * p[i]
		}
		p[i] += step
		simplex[i+1] = p
		values[i+1] = f(p)
	}

	history := make([]float64, 0, maxIterations)
	order := make([]int, n+1)

	for iter := 0; iter < maxIterations; iter++ {
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool { return values[order[i]] < values[order[j]] })
		best := values[order[0]]
		history = append(history, best)

		if len(history) >= window {
			prior := history[len(history)-window]
			if prior != 0 && (prior-best)/abs(prior) < minImprove {
				break
			}
			if prior == 0 && abs(best) < minImprove {
				break
			}
		}

		worst := order[n]
		secondWorst := order[n-1]

		centroid := make([]float64, n)
		for _, idx := range order[:n] {
			for d := 0; d < n; d++ {
				centroid[d] += simplex[idx][d]
			}
		}
		for d := range centroid {
			centroid[d] /= float64(n)
		}

		reflected := vecAdd(centroid, vecScale(vecSub(centroid, simplex[worst]), alpha))
		reflectedVal := f(reflected)

		switch {
		case reflectedVal < values[order[0]]:
			expanded := vecAdd(centroid, vecScale(vecSub(reflected, centroid), gamma))
			expandedVal := f(expanded)
			if expandedVal < reflectedVal {
				simplex[worst], values[worst] = expanded, expandedVal
			} else {
				simplex[worst], values[worst] = reflected, reflectedVal
			}

		case reflectedVal < values[secondWorst]:
			simplex[worst], values[worst] = reflected, reflectedVal

		default:
			contracted := vecAdd(centroid, vecScale(vecSub(simplex[worst], centroid), rho))
			contractedVal := f(contracted)
			if contractedVal < values[worst] {
				simplex[worst], values[worst] = contracted, contractedVal
			} else {
				best := simplex[order[0]]
				for _, idx := range order[1:] {
					simplex[idx] = vecAdd(best, vecScale(vecSub(simplex[idx], best), sigma))
					values[idx] = f(simplex[idx])
				}
			}
		}
	}

	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return values[order[i]] < values[order[j]] })
	return simplex[order[0]], history
}

func vecAdd(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func vecSub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func vecScale(a []float64, s float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * s
	}
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
