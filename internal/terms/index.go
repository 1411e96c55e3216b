// Package terms defines the core term syntax: the input language the
// kernel evaluates, plus the de Bruijn index/level/offset arithmetic it is
// built on.
package terms

import "math"

// UniverseLevel is the level of a Type ℓ.
type UniverseLevel uint32

// UniverseOffset is a non-negative shift applied to every embedded
// Type ℓ during evaluation of a Lift'd subterm.
type UniverseOffset uint32

// Add returns level+offset, or false if the addition would overflow.
func (l UniverseLevel) Add(offset UniverseOffset) (UniverseLevel, bool) {
	if uint64(l)+uint64(offset) > math.MaxUint32 {
		return 0, false
	}
	return l + UniverseLevel(offset), true
}

// Add composes two universe offsets (Lift(Lift(t, a), b) == Lift(t, a+b)).
func (o UniverseOffset) Add(other UniverseOffset) (UniverseOffset, bool) {
	if uint64(o)+uint64(other) > math.MaxUint32 {
		return 0, false
	}
	return o + other, true
}

// LocalIndex is a de Bruijn index: 0 is the innermost binder.
type LocalIndex uint32

// LocalLevel is a de Bruijn level: 0 is the outermost binder.
type LocalLevel uint32

// LocalSize is the number of local bindings currently in scope.
type LocalSize uint32

// NextLevel returns the level that the next pushed binding will occupy.
func (s LocalSize) NextLevel() LocalLevel {
	return LocalLevel(s)
}

// Increment returns the size after pushing one more binding.
func (s LocalSize) Increment() LocalSize {
	return s + 1
}

// Index converts a level to an index under this size. The second return
// value is false if the level was captured in a larger environment than
// this one (an "escaped" level) — see spec §4.5.
func (s LocalSize) Index(level LocalLevel) (LocalIndex, bool) {
	if uint32(level) >= uint32(s) {
		return 0, false
	}
	return LocalIndex(uint32(s) - 1 - uint32(level)), true
}

// Level converts an index to a level under this size.
func (s LocalSize) Level(index LocalIndex) (LocalLevel, bool) {
	if uint32(index) >= uint32(s) {
		return 0, false
	}
	return LocalLevel(uint32(s) - 1 - uint32(index)), true
}
