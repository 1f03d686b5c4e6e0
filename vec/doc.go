// SPDX-License-Identifier: MIT

// Package vec provides fixed-dimension float32 vectors for geometry,
// graphics and physics code: Vec2, Vec3 and Vec4, each a plain value
// type with exact component-wise semantics.
//
// 🚀 What is vec?
//
//   - Three array-backed types, Vec2 [2]float32, Vec3 [3]float32 and
//     Vec4 [4]float32, constructed with plain literals (Vec3{1, 2, 3}),
//     axis constructors (UnitX3, UnitY3, UnitZ3, ...) or the explicit
//     zero constructors (Zero2, Zero3, Zero4).
//   - Every operation is pure: the receiver is copied by value, mutated
//     locally and returned, so no call ever aliases or changes its
//     operands and values are safe to share between goroutines.
//   - Equality is the language's ==: exact per-component comparison with
//     no epsilon. Two vectors are equal iff every component is equal.
//
// ✨ Key features:
//
//   - Scalar arithmetic in both spellings where algebra allows it:
//     v.Scale(s) == Scale3(s, v) and v.AddScalar(s) == AddScalar3(s, v);
//     subtraction and division are one-directional (SubScalar, DivScalar)
//     because s-v and s/v are different operations that this package
//     deliberately does not define.
//   - Metric helpers: Len, LenSq, Dist, Dot, Normalize (zero in, zero
//     out), Lerp.
//   - Angle helpers on every dimension (Cos) plus the 3-D specials:
//     Cross under the right-hand rule and Sin derived from it.
//   - Dimension bridges: Vec3.XY drops z, Vec4.XYZ drops w.
//
// ⚙️ Precision contract:
//
//   - All arithmetic is float32 end to end. Len routes through the
//     correctly rounded math.Sqrt, so magnitudes are the nearest float32
//     to the true value. Accumulations run in fixed index order; results
//     are bit-for-bit reproducible.
//   - DivScalar performs no zero check: IEEE-754 division semantics
//     apply and components come back as ±Inf or NaN.
//
// 🚦 Panics:
//
//   - Cos and Sin panic with "Magnitude of one of the vectors is zero"
//     when either operand has zero magnitude; the angle to a zero vector
//     is undefined. Normalize never panics.
//
// See examples in example_test.go and runnable demos under examples/.
package vec
