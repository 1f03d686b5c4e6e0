// SPDX-License-Identifier: MIT

// Package vec: Vec4 constructors, accessors and arithmetic. The methods
// shared with Vec2 carry the same contracts; see vec2.go for the full
// commentary.
package vec

import "math"

// Zero4 returns the 4-dimensional zero vector, identical to Vec4{}.
func Zero4() Vec4 { return Vec4{} }

// UnitX4 returns the 4-dimensional unit vector along the x axis.
func UnitX4() Vec4 {
	var v Vec4
	v[axisX] = 1
	return v
}

// UnitY4 returns the 4-dimensional unit vector along the y axis.
func UnitY4() Vec4 {
	var v Vec4
	v[axisY] = 1
	return v
}

// UnitZ4 returns the 4-dimensional unit vector along the z axis.
func UnitZ4() Vec4 {
	var v Vec4
	v[axisZ] = 1
	return v
}

// UnitW4 returns the 4-dimensional unit vector along the w axis.
func UnitW4() Vec4 {
	var v Vec4
	v[axisW] = 1
	return v
}

// Scale4 is the scalar-on-the-left form of Vec4.Scale.
func Scale4(s float32, v Vec4) Vec4 { return v.Scale(s) }

// AddScalar4 is the scalar-on-the-left form of Vec4.AddScalar.
func AddScalar4(s float32, v Vec4) Vec4 { return v.AddScalar(s) }

// X returns the component stored at the x axis.
func (v Vec4) X() float32 { return v[axisX] }

// Y returns the component stored at the y axis.
func (v Vec4) Y() float32 { return v[axisY] }

// Z returns the component stored at the z axis.
func (v Vec4) Z() float32 { return v[axisZ] }

// W returns the component stored at the w axis.
func (v Vec4) W() float32 { return v[axisW] }

// Scale returns a new vector with every component multiplied by s.
func (v Vec4) Scale(s float32) Vec4 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// AddScalar returns a new vector with s added to every component.
func (v Vec4) AddScalar(s float32) Vec4 {
	for i := range v {
		v[i] += s
	}
	return v
}

// SubScalar returns a new vector with s subtracted from every component.
func (v Vec4) SubScalar(s float32) Vec4 {
	for i := range v {
		v[i] -= s
	}
	return v
}

// DivScalar returns a new vector with every component divided by s;
// division by zero follows IEEE-754 (±Inf, NaN).
func (v Vec4) DivScalar(s float32) Vec4 {
	for i := range v {
		v[i] /= s
	}
	return v
}

// Add returns the component-wise sum v + w.
func (v Vec4) Add(w Vec4) Vec4 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Sub returns the component-wise difference v - w.
func (v Vec4) Sub(w Vec4) Vec4 {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// Neg returns the component-wise negation of v.
func (v Vec4) Neg() Vec4 { return v.Scale(-1) }

// Dot returns the dot product v · w, accumulated in fixed index order
// x→y→z→w.
func (v Vec4) Dot(w Vec4) float32 {
	var sum float32
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

// LenSq returns the squared Euclidean magnitude, Dot(v, v).
func (v Vec4) LenSq() float32 { return v.Dot(v) }

// Len returns the Euclidean magnitude (length) of v.
func (v Vec4) Len() float32 {
	return float32(math.Sqrt(float64(v.LenSq())))
}

// Dist returns the Euclidean distance between the points v and w.
func (v Vec4) Dist(w Vec4) float32 { return v.Sub(w).Len() }

// Lerp returns the linear interpolation v + (w-v)·t; t is not clamped.
func (v Vec4) Lerp(w Vec4, t float32) Vec4 {
	return v.Add(w.Sub(v).Scale(t))
}

// Normalize returns the unit vector pointing in the direction of v, or
// the zero vector unchanged when v has zero magnitude.
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l == 0 {
		return Vec4{}
	}
	return v.Scale(1 / l)
}

// XYZ drops the w component, returning the x, y and z components as a
// Vec3. Useful when a homogeneous coordinate has already been divided
// through and only the spatial part matters.
func (v Vec4) XYZ() Vec3 { return Vec3{v[axisX], v[axisY], v[axisZ]} }
