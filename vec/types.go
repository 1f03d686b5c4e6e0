// SPDX-License-Identifier: MIT

// Package vec: domain types and shared contracts for the Vec2/Vec3/Vec4
// family. This file intentionally contains ONLY the vector type
// declarations, the axis index constants, and the panic message used by
// the angle operations. Per-dimension constructors and arithmetic live in
// vec2.go, vec3.go and vec4.go; angle operations live in angle.go.
package vec

// Axis indices shared by every dimension. Component i of a vector stores
// the axis with index i, so accessors and unit constructors never touch
// magic numbers.
const (
	axisX = 0 // first component
	axisY = 1 // second component
	axisZ = 2 // third component (Vec3 and Vec4)
	axisW = 3 // fourth component (Vec4 only)
)

// Internal panic messages (no magic strings). Angle operations on a
// zero-magnitude operand are programmer errors and panic with a stable
// diagnostic; see angle.go for the contract.
const panicZeroMagnitude = "Magnitude of one of the vectors is zero"

// Vec2 is an immutable 2-component float32 vector (value type,
// stack-allocated). Component order is [x, y]. Length is fixed for the
// life of the value and comparison with == is exact per component, with
// no epsilon tolerance. Every operation returns a new value; the receiver
// is never mutated, so Vec2 values may be shared freely across goroutines.
type Vec2 [2]float32

// Vec3 is an immutable 3-component float32 vector (value type,
// stack-allocated). Component order is [x, y, z]. Vec3 is the only
// dimension with a cross product and an angle sine. Same equality and
// immutability contracts as Vec2.
type Vec3 [3]float32

// Vec4 is an immutable 4-component float32 vector (value type,
// stack-allocated). Component order is [x, y, z, w]. Same equality and
// immutability contracts as Vec2.
type Vec4 [4]float32
