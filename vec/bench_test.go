// SPDX-License-Identifier: MIT

// Package vec_test: micro-benchmarks for the hot-path operations. Every
// operation is a handful of float32 instructions on stack values, so the
// interesting number is allocations: all of these must report 0 allocs/op.
package vec_test

import (
	"testing"

	"github.com/katalvlaran/fixvec/vec"
)

// Package-level sinks keep the compiler from eliminating the benchmarked
// calls as dead code.
var (
	sinkVec2 vec.Vec2
	sinkVec3 vec.Vec3
	sinkF32  float32
)

// BenchmarkVec2_Normalize measures the scale-by-reciprocal path, square
// root included.
func BenchmarkVec2_Normalize(b *testing.B) {
	v := vec.Vec2{3, 4}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec2 = v.Normalize()
	}
}

// BenchmarkVec3_Cross measures the six-multiply determinant expansion.
func BenchmarkVec3_Cross(b *testing.B) {
	v, w := vec.Vec3{1, 2, 3}, vec.Vec3{3, 2, 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec3 = v.Cross(w)
	}
}

// BenchmarkVec4_Dot measures the widest accumulation loop.
func BenchmarkVec4_Dot(b *testing.B) {
	v, w := vec.Vec4{1, 2, 3, 4}, vec.Vec4{4, 3, 2, 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = v.Dot(w)
	}
}

// BenchmarkVec3_Sin measures the most expensive angle path: one cross
// product plus three magnitudes.
func BenchmarkVec3_Sin(b *testing.B) {
	v, w := vec.Vec3{1, 2, 3}, vec.Vec3{3, 2, 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = v.Sin(w)
	}
}

// BenchmarkVec3_Lerp measures the three-operation interpolation chain
// (sub, scale, add).
func BenchmarkVec3_Lerp(b *testing.B) {
	v, w := vec.Vec3{0, 0, 0}, vec.Vec3{10, 20, 30}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVec3 = v.Lerp(w, 0.5)
	}
}
