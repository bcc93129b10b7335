// Package patch tracks which named boundary patch owns each block side,
// the merged master/slave patch pairs, and the default patch catching any
// side left unassigned.
package patch
