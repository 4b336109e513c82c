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
	"math"

	"github.com/gomlx/exceptions"
)

// SphericalHarmonics evaluates the complex spherical harmonics Y_l^m
// (orthonormal, Condon-Shortley phase) up to degree maxDegree, flattened to
// a vector by Index(l, m) = l(l+1)+m -- the angular basis of ACE-style
// potentials.
type SphericalHarmonics struct {
	maxDegree int

	// triSize is the size of the m >= 0 triangle of associated Legendre
	// values computed per evaluation.
	triSize int
}

// NewSphericalHarmonics creates an evaluator for degrees 0 … maxDegree. It
// panics if maxDegree is negative.
func NewSphericalHarmonics(maxDegree int) *SphericalHarmonics {
	if maxDegree < 0 {
		exceptions.Panicf("basis: NewSphericalHarmonics(maxDegree=%d): maxDegree must be >= 0", maxDegree)
	}
	return &SphericalHarmonics{
		maxDegree: maxDegree,
		triSize:   (maxDegree + 1) * (maxDegree + 2) / 2,
	}
}

// Size returns the number of basis functions, (maxDegree+1)².
func (y *SphericalHarmonics) Size() int { return (y.maxDegree + 1) * (y.maxDegree + 1) }

// Index returns the position of Y_l^m in the output vector: l(l+1)+m, with
// -l <= m <= l.
func (y *SphericalHarmonics) Index(l, m int) int { return l*(l+1) + m }

// triIndex addresses the m >= 0 triangle: entries (l, m) with m <= l.
func triIndex(l, m int) int { return l*(l+1)/2 + m }

// Eval fills dst with Y_l^m(θ, φ) for all l <= maxDegree, |m| <= l, and
// returns dst (reallocated if too short).
//
// The normalized associated Legendre values are computed with the standard
// stable recursions (diagonal, then off-diagonal, then the general
// three-term in l), and the negative orders follow from
// Y_l^{-m} = (-1)^m conj(Y_l^m).
func (y *SphericalHarmonics) Eval(theta, phi float64, dst []complex128) []complex128 {
	dst = ensure(dst, y.Size())
	cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)

	legendre := make([]float64, y.triSize)
	legendre[triIndex(0, 0)] = 1 / math.Sqrt(4*math.Pi)
	for m := 1; m <= y.maxDegree; m++ {
		// Diagonal: P̄_m^m, Condon-Shortley phase included.
		legendre[triIndex(m, m)] = -math.Sqrt(float64(2*m+1)/float64(2*m)) * sinTheta * legendre[triIndex(m-1, m-1)]
	}
	for m := 0; m < y.maxDegree; m++ {
		legendre[triIndex(m+1, m)] = math.Sqrt(float64(2*m+3)) * cosTheta * legendre[triIndex(m, m)]
	}
	for m := 0; m <= y.maxDegree; m++ {
		for l := m + 2; l <= y.maxDegree; l++ {
			lf, mf := float64(l), float64(m)
			factor := math.Sqrt((4*lf*lf - 1) / (lf*lf - mf*mf))
			previous := math.Sqrt(((lf-1)*(lf-1) - mf*mf) / (4*(lf-1)*(lf-1) - 1))
			legendre[triIndex(l, m)] = factor *
				(cosTheta*legendre[triIndex(l-1, m)] - previous*legendre[triIndex(l-2, m)])
		}
	}

	for l := 0; l <= y.maxDegree; l++ {
		dst[y.Index(l, 0)] = complex(legendre[triIndex(l, 0)], 0)
	}
	for m := 1; m <= y.maxDegree; m++ {
		azimuth := complex(math.Cos(float64(m)*phi), math.Sin(float64(m)*phi))
		sign := 1.0
		if m%2 == 1 {
			sign = -1
		}
		for l := m; l <= y.maxDegree; l++ {
			positive := complex(legendre[triIndex(l, m)], 0) * azimuth
			dst[y.Index(l, m)] = positive
			dst[y.Index(l, -m)] = complex(sign*real(positive), -sign*imag(positive))
		}
	}
	return dst
}
