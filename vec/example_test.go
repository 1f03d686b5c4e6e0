// SPDX-License-Identifier: MIT

// Package vec_test: runnable examples for the vec package. Each example
// is a miniature scenario with its exact printed output; the values are
// chosen so the float32 results format deterministically.
package vec_test

import (
	"fmt"

	"github.com/katalvlaran/fixvec/vec"
)

// ////////////////////////////////////////////////////////////////////////////
// Example 1: normalizing a displacement into a heading
// ////////////////////////////////////////////////////////////////////////////

// ExampleVec2_Normalize turns a raw 2-D displacement into a unit heading.
//
// Scenario:
//
//	An entity moved 3 units east and 4 units north. Its heading is the
//	displacement scaled to unit length; the 3-4-5 triangle keeps every
//	component exactly representable.
//
// Complexity: O(1) time, zero allocations.
func ExampleVec2_Normalize() {
	displacement := vec.Vec2{3, 4}

	heading := displacement.Normalize()
	fmt.Println(heading)
	fmt.Println(heading.Len())

	// Zero displacement stays zero: no panic, no NaN.
	fmt.Println(vec.Zero2().Normalize())

	// Output:
	// [0.6 0.8]
	// 1
	// [0 0]
}

// ////////////////////////////////////////////////////////////////////////////
// Example 2: scalar arithmetic in both spellings
// ////////////////////////////////////////////////////////////////////////////

// ExampleVec2_Scale shows the two spellings of commutative scalar
// arithmetic and the one-directional subtraction.
//
// Scenario:
//
//	Doubling a velocity reads naturally either way round; the package
//	offers v.Scale(2) and Scale2(2, v) and guarantees identical bits.
//
// Complexity: O(1) time, zero allocations.
func ExampleVec2_Scale() {
	v := vec.Vec2{3, 4}

	fmt.Println(v.Scale(2))
	fmt.Println(vec.Scale2(2, v))
	fmt.Println(v.Scale(2) == vec.Scale2(2, v))
	fmt.Println(v.SubScalar(2))

	// Output:
	// [6 8]
	// [6 8]
	// true
	// [1 2]
}

// ////////////////////////////////////////////////////////////////////////////
// Example 3: surface normal of a triangle via the cross product
// ////////////////////////////////////////////////////////////////////////////

// ExampleVec3_Cross computes a triangle's (unnormalized) surface normal.
//
// Scenario:
//
//	Two edge vectors span a triangle; their cross product is orthogonal
//	to both, with orientation fixed by the right-hand rule. Integer
//	components keep the arithmetic exact.
//
// Complexity: O(1) time, zero allocations.
func ExampleVec3_Cross() {
	e1 := vec.Vec3{1, 2, 3}
	e2 := vec.Vec3{3, 2, 1}

	normal := e1.Cross(e2)
	fmt.Println(normal)
	fmt.Println(normal.Dot(e1), normal.Dot(e2))

	// Output:
	// [-4 8 -4]
	// 0 0
}

// ////////////////////////////////////////////////////////////////////////////
// Example 4: angle ratios without computing the angle
// ////////////////////////////////////////////////////////////////////////////

// ExampleVec3_Cos reads the cosine and sine of the angle between two
// vectors directly, skipping the trip through radians.
//
// Scenario:
//
//	A steering routine only needs "how aligned are we" (cos) and "how
//	far off axis" (sin), never the angle itself. Fixed-precision output
//	keeps the printed floats deterministic.
//
// Complexity: O(1) time, zero allocations.
func ExampleVec3_Cos() {
	a := vec.Vec3{1, 2, 3}
	b := vec.Vec3{3, 2, 1}

	fmt.Printf("cos=%.4f sin=%.4f\n", a.Cos(b), a.Sin(b))

	// Output:
	// cos=0.7143 sin=0.6999
}

// ////////////////////////////////////////////////////////////////////////////
// Example 5: 4-component dot product
// ////////////////////////////////////////////////////////////////////////////

// ExampleVec4_Dot weighs a 4-channel sample against per-channel gains.
//
// Scenario:
//
//	An RGBA sample dotted with a gain profile yields one scalar energy;
//	small integers keep the accumulation exact.
//
// Complexity: O(1) time, zero allocations.
func ExampleVec4_Dot() {
	sample := vec.Vec4{1, 2, 3, 4}
	gains := vec.Vec4{4, 3, 2, 1}

	fmt.Println(sample.Dot(gains))
	fmt.Println(sample.Add(gains))

	// Output:
	// 20
	// [5 5 5 5]
}
