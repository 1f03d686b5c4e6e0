// SPDX-License-Identifier: MIT

// Package vec: angle operations between two vectors.
//
// Cos and Sin return the cosine and sine of the angle θ between their
// operands without ever materialising θ itself: callers that need the
// angle in radians can take math.Acos/math.Asin of the result, but most
// geometric predicates (alignment, orthogonality, winding) only need the
// ratio. Both operations divide by the product of the operand magnitudes,
// so a zero-magnitude operand makes the angle mathematically undefined.
// That is a programmer error, not a recoverable condition, and the
// operations panic with the stable diagnostic panicZeroMagnitude;
// Normalize, by contrast, treats the zero vector as a well-defined
// degenerate input. Callers that may legitimately hold zero vectors must
// check LenSq() != 0 before asking for an angle.
package vec

// mustNonZero panics with panicZeroMagnitude unless both magnitudes are
// non-zero. The check is exact on the computed float32 magnitude: a
// vector whose squared magnitude underflows to zero is indistinguishable
// from the zero vector and trips it too.
func mustNonZero(la, lb float32) {
	if la == 0 || lb == 0 {
		panic(panicZeroMagnitude)
	}
}

// Cos returns the cosine of the angle between v and w:
// Dot(v, w) / (Len(v)·Len(w)). The result is 1 for parallel vectors,
// 0 for orthogonal ones and -1 for opposite ones, up to float32
// rounding. Panics when either operand has zero magnitude.
func (v Vec2) Cos(w Vec2) float32 {
	la, lb := v.Len(), w.Len()
	mustNonZero(la, lb)
	return v.Dot(w) / (la * lb)
}

// Cos returns the cosine of the angle between v and w:
// Dot(v, w) / (Len(v)·Len(w)). Panics when either operand has zero
// magnitude.
func (v Vec3) Cos(w Vec3) float32 {
	la, lb := v.Len(), w.Len()
	mustNonZero(la, lb)
	return v.Dot(w) / (la * lb)
}

// Cos returns the cosine of the angle between v and w:
// Dot(v, w) / (Len(v)·Len(w)). Panics when either operand has zero
// magnitude.
func (v Vec4) Cos(w Vec4) float32 {
	la, lb := v.Len(), w.Len()
	mustNonZero(la, lb)
	return v.Dot(w) / (la * lb)
}

// Sin returns the sine of the angle between v and w:
// Len(Cross(v, w)) / (Len(v)·Len(w)). Because the cross product only
// exists in three dimensions, Sin is defined on Vec3 alone. The result
// is always non-negative (the unsigned angle in [0, π]); combine with
// Cos to recover the quadrant. Panics when either operand has zero
// magnitude, the same contract as Cos.
func (v Vec3) Sin(w Vec3) float32 {
	la, lb := v.Len(), w.Len()
	mustNonZero(la, lb)
	return v.Cross(w).Len() / (la * lb)
}
