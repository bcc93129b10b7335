package patch

import "errors"

// ErrPatchConflict is returned when a block side is claimed by two
// different named patches.
var ErrPatchConflict = errors.New("patch: block side already claimed by a different patch")

// ErrUnknownPatch is returned when modify_patch/merge_patches names a
// patch that was never assigned to any block side.
var ErrUnknownPatch = errors.New("patch: unknown patch name")
