// Package fixvec is a compact toolkit for fixed-dimension float32 vector
// math: the 2-, 3- and 4-component vectors used by graphics, physics and
// geometry code.
//
// 🚀 What is fixvec?
//
//	A small, allocation-free, value-semantics library that brings together:
//		• Vector types: Vec2, Vec3, Vec4 over [N]float32 arrays
//		• Constructors: zero vectors & per-axis unit vectors
//		• Scalar arithmetic: scale, add, subtract, divide (IEEE-754 semantics)
//		• Vector arithmetic: add, subtract, negate, lerp, distance
//		• Metrics: Euclidean magnitude, squared magnitude, dot product
//		• Angles: cosine of the angle for every dimension, sine & cross
//		  product for Vec3
//		• Normalisation: unit direction with a well-defined zero-vector case
//
// ✨ Why choose fixvec?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed component order, exact float32 contracts
//   - Pure Go – no cgo, no hidden deps
//   - Immutable values – every operation returns a new vector, so values
//     are safe to share across goroutines without locks
//
// Under the hood, everything is organized under one subpackage:
//
//	vec/ — Vec2, Vec3, Vec4 types, constructors and all operations
//
// Quick example:
//
//	n := vec.Vec2{3, 4}.Normalize() // Vec2{0.6, 0.8}
//	d := vec.Vec3{1, 2, 3}.Dot(vec.Vec3{3, 2, 1})
//
// Next up: richer swizzles and angle extraction helpers.
// Dive into vec/example_test.go and examples/ for full scenarios.
//
//	go get github.com/katalvlaran/fixvec
package fixvec
