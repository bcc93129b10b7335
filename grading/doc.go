// Package grading resolves the user's partial Chop declarations into fully
// defined Gradings: ordered lists of (length fraction, count, total
// expansion) segments, one per axis or wire.
//
// The arithmetic: cell sizes along a segment form a geometric progression
// with common ratio r, first cell s, last
// cell e, count N and total_expansion R = e/s = r^(N-1); axis length
// L = s*(r^N-1)/(r-1) (or N*s when r==1). Any two of {N,R,s,e} for a given
// L determine the rest; N is rounded to the nearest positive integer and r
// is then re-solved so the segment's length is exactly L.
package grading
