// SPDX-License-Identifier: MIT

// Package vec: Vec3 constructors, accessors, arithmetic and the cross
// product. The methods shared with Vec2 carry the same contracts; see
// vec2.go for the full commentary.
package vec

import "math"

// Zero3 returns the 3-dimensional zero vector, identical to Vec3{}.
func Zero3() Vec3 { return Vec3{} }

// UnitX3 returns the 3-dimensional unit vector along the x axis.
func UnitX3() Vec3 {
	var v Vec3
	v[axisX] = 1
	return v
}

// UnitY3 returns the 3-dimensional unit vector along the y axis.
func UnitY3() Vec3 {
	var v Vec3
	v[axisY] = 1
	return v
}

// UnitZ3 returns the 3-dimensional unit vector along the z axis.
func UnitZ3() Vec3 {
	var v Vec3
	v[axisZ] = 1
	return v
}

// Scale3 is the scalar-on-the-left form of Vec3.Scale.
func Scale3(s float32, v Vec3) Vec3 { return v.Scale(s) }

// AddScalar3 is the scalar-on-the-left form of Vec3.AddScalar.
func AddScalar3(s float32, v Vec3) Vec3 { return v.AddScalar(s) }

// X returns the component stored at the x axis.
func (v Vec3) X() float32 { return v[axisX] }

// Y returns the component stored at the y axis.
func (v Vec3) Y() float32 { return v[axisY] }

// Z returns the component stored at the z axis.
func (v Vec3) Z() float32 { return v[axisZ] }

// Scale returns a new vector with every component multiplied by s.
func (v Vec3) Scale(s float32) Vec3 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// AddScalar returns a new vector with s added to every component.
func (v Vec3) AddScalar(s float32) Vec3 {
	for i := range v {
		v[i] += s
	}
	return v
}

// SubScalar returns a new vector with s subtracted from every component.
func (v Vec3) SubScalar(s float32) Vec3 {
	for i := range v {
		v[i] -= s
	}
	return v
}

// DivScalar returns a new vector with every component divided by s;
// division by zero follows IEEE-754 (±Inf, NaN).
func (v Vec3) DivScalar(s float32) Vec3 {
	for i := range v {
		v[i] /= s
	}
	return v
}

// Add returns the component-wise sum v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Sub returns the component-wise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// Neg returns the component-wise negation of v.
func (v Vec3) Neg() Vec3 { return v.Scale(-1) }

// Dot returns the dot product v · w, accumulated in fixed index order
// x→y→z.
func (v Vec3) Dot(w Vec3) float32 {
	var sum float32
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

// Cross returns the cross product v × w under the right-hand rule: a
// vector orthogonal to both operands whose magnitude equals
// Len(v)·Len(w)·sin(θ). Components follow the standard determinant
// expansion
//
//	( v.y·w.z - v.z·w.y,
//	  v.z·w.x - v.x·w.z,
//	  v.x·w.y - v.y·w.x )
//
// Cross is anti-commutative: w.Cross(v) == v.Cross(w).Neg(). The cross
// product of parallel (or zero) operands is the zero vector.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[axisY]*w[axisZ] - v[axisZ]*w[axisY],
		v[axisZ]*w[axisX] - v[axisX]*w[axisZ],
		v[axisX]*w[axisY] - v[axisY]*w[axisX],
	}
}

// LenSq returns the squared Euclidean magnitude, Dot(v, v).
func (v Vec3) LenSq() float32 { return v.Dot(v) }

// Len returns the Euclidean magnitude (length) of v.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.LenSq())))
}

// Dist returns the Euclidean distance between the points v and w.
func (v Vec3) Dist(w Vec3) float32 { return v.Sub(w).Len() }

// Lerp returns the linear interpolation v + (w-v)·t; t is not clamped.
func (v Vec3) Lerp(w Vec3, t float32) Vec3 {
	return v.Add(w.Sub(v).Scale(t))
}

// Normalize returns the unit vector pointing in the direction of v, or
// the zero vector unchanged when v has zero magnitude.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// XY projects v onto the xy plane, returning the x and y components as a
// Vec2 and dropping z.
func (v Vec3) XY() Vec2 { return Vec2{v[axisX], v[axisY]} }
