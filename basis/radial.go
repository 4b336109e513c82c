/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package basis

import (
	"github.com/gomlx/bsplines"
	"github.com/gomlx/exceptions"
)

// BSplineRadial evaluates a B-spline basis over a radial knot grid, the
// usual splined radial basis of interatomic potentials: smooth, locally
// supported bumps covering the cutoff interval.
//
// Basis function i is the spline whose control points are the i-th unit
// vector, so the outputs at any r sum to one inside the knot span.
type BSplineRadial struct {
	splines []*bsplines.BSpline
	rMin    float64
	rCut    float64
}

// NewBSplineRadial creates a radial basis of the given degree over the
// knots, which must be increasing. Outside [knots[0], knots[last]] the basis
// extrapolates as a constant, so values beyond the cutoff stay bounded. It
// panics on fewer than two knots or degree < 1.
func NewBSplineRadial(degree int, knots []float64) *BSplineRadial {
	if degree < 1 {
		exceptions.Panicf("basis: NewBSplineRadial(degree=%d): degree must be >= 1", degree)
	}
	if len(knots) < 2 {
		exceptions.Panicf("basis: NewBSplineRadial: got %d knots, need at least 2", len(knots))
	}
	numBasis := len(knots) + degree - 1
	splines := make([]*bsplines.BSpline, numBasis)
	for i := range splines {
		controlPoints := make([]float64, numBasis)
		controlPoints[i] = 1
		splines[i] = bsplines.New(degree, knots).
			WithControlPoints(controlPoints).
			WithExtrapolation(bsplines.ExtrapolateConstant)
	}
	return &BSplineRadial{splines: splines, rMin: knots[0], rCut: knots[len(knots)-1]}
}

// Size returns the number of basis functions, numKnots + degree - 1.
func (r *BSplineRadial) Size() int { return len(r.splines) }

// Cutoff returns the radial interval [rMin, rCut] spanned by the knots.
func (r *BSplineRadial) Cutoff() (rMin, rCut float64) { return r.rMin, r.rCut }

// Eval fills dst with the basis values at radius rr and returns dst
// (reallocated if too short).
func (r *BSplineRadial) Eval(rr float64, dst []float64) []float64 {
	dst = ensure(dst, r.Size())
	for i, spline := range r.splines {
		dst[i] = spline.Evaluate(rr)
	}
	return dst
}
