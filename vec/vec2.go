// SPDX-License-Identifier: MIT

// Package vec: Vec2 constructors, accessors and arithmetic.
package vec

import "math"

// Zero2 returns the 2-dimensional zero vector. It is identical to the
// zero value Vec2{} and exists so the degenerate origin can be spelled
// explicitly at call sites.
func Zero2() Vec2 { return Vec2{} }

// UnitX2 returns the 2-dimensional unit vector along the x axis.
func UnitX2() Vec2 {
	var v Vec2
	v[axisX] = 1
	return v
}

// UnitY2 returns the 2-dimensional unit vector along the y axis.
func UnitY2() Vec2 {
	var v Vec2
	v[axisY] = 1
	return v
}

// Scale2 is the scalar-on-the-left form of Vec2.Scale:
// Scale2(s, v) and v.Scale(s) yield identical results.
func Scale2(s float32, v Vec2) Vec2 { return v.Scale(s) }

// AddScalar2 is the scalar-on-the-left form of Vec2.AddScalar:
// AddScalar2(s, v) and v.AddScalar(s) yield identical results.
// Subtraction and division have no scalar-first forms; they read
// left-to-right only.
func AddScalar2(s float32, v Vec2) Vec2 { return v.AddScalar(s) }

// X returns the component stored at the x axis.
func (v Vec2) X() float32 { return v[axisX] }

// Y returns the component stored at the y axis.
func (v Vec2) Y() float32 { return v[axisY] }

// Scale returns a new vector with every component multiplied by s.
// The receiver is a value copy, so mutating it in place is safe.
func (v Vec2) Scale(s float32) Vec2 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// AddScalar returns a new vector with s added to every component.
func (v Vec2) AddScalar(s float32) Vec2 {
	for i := range v {
		v[i] += s
	}
	return v
}

// SubScalar returns a new vector with s subtracted from every component.
func (v Vec2) SubScalar(s float32) Vec2 {
	for i := range v {
		v[i] -= s
	}
	return v
}

// DivScalar returns a new vector with every component divided by s.
// Division by zero is not guarded: components follow IEEE-754 and come
// back as ±Inf (or NaN for a zero component).
func (v Vec2) DivScalar(s float32) Vec2 {
	for i := range v {
		v[i] /= s
	}
	return v
}

// Add returns the component-wise sum v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Sub returns the component-wise difference v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// Neg returns the component-wise negation of v, equivalent to Scale(-1).
func (v Vec2) Neg() Vec2 { return v.Scale(-1) }

// Dot returns the dot product v · w: the sum of pairwise component
// products, accumulated in fixed index order x→y so results are
// bit-for-bit reproducible across runs.
func (v Vec2) Dot(w Vec2) float32 {
	var sum float32
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

// LenSq returns the squared Euclidean magnitude, Dot(v, v) without the
// square root. Prefer it to Len for magnitude comparisons.
func (v Vec2) LenSq() float32 { return v.Dot(v) }

// Len returns the Euclidean magnitude (length) of v.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.LenSq())))
}

// Dist returns the Euclidean distance between the points v and w.
func (v Vec2) Dist(w Vec2) float32 { return v.Sub(w).Len() }

// Lerp returns the linear interpolation v + (w-v)·t. t is not clamped:
// t=0 yields v, t=1 yields w, values outside [0,1] extrapolate along
// the same line.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return v.Add(w.Sub(v).Scale(t))
}

// Normalize returns the unit vector pointing in the direction of v,
// computed as v scaled by the reciprocal of Len. Normalizing the zero
// vector is a well-defined degenerate case and returns the zero vector
// unchanged; no error, no panic.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}
