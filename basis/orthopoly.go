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

// OrthPoly evaluates a family of orthogonal polynomials defined by the
// three-term recurrence
//
//	P_0(x) = a[0]
//	P_1(x) = (a[1]·x + b[1]) · P_0(x)
//	P_k(x) = (a[k]·x + b[k]) · P_{k-1}(x) + c[k] · P_{k-2}(x)
//
// Any classical weighted family fits this form; use Jacobi or Legendre for
// the standard constructions, or NewOrthPoly with externally generated
// coefficients.
type OrthPoly struct {
	a, b, c []float64
}

// NewOrthPoly creates an evaluator from recurrence coefficients. All three
// slices must have length maxDegree+1; b[0], c[0] and c[1] are unused. It
// panics on inconsistent lengths.
func NewOrthPoly(a, b, c []float64) *OrthPoly {
	if len(a) == 0 || len(a) != len(b) || len(a) != len(c) {
		exceptions.Panicf("basis: NewOrthPoly: coefficient slices must have equal non-zero lengths, got %d/%d/%d",
			len(a), len(b), len(c))
	}
	return &OrthPoly{a: a, b: b, c: c}
}

// Jacobi creates the L²-normalized Jacobi polynomials P^(alpha,beta)_0 …
// P^(alpha,beta)_maxDegree, orthonormal on [-1, 1] under the weight
// (1-x)^alpha (1+x)^beta. It panics for maxDegree < 0 or weight exponents
// <= -1, for which the weight is not integrable.
func Jacobi(alpha, beta float64, maxDegree int) *OrthPoly {
	if maxDegree < 0 {
		exceptions.Panicf("basis: Jacobi(maxDegree=%d): maxDegree must be >= 0", maxDegree)
	}
	if alpha <= -1 || beta <= -1 {
		exceptions.Panicf("basis: Jacobi(alpha=%g, beta=%g): weight exponents must be > -1", alpha, beta)
	}
	a := make([]float64, maxDegree+1)
	b := make([]float64, maxDegree+1)
	c := make([]float64, maxDegree+1)

	gamma0 := math.Pow(2, alpha+beta+1) / (alpha + beta + 1) *
		math.Gamma(alpha+1) * math.Gamma(beta+1) / math.Gamma(alpha+beta+1)
	a[0] = 1 / math.Sqrt(gamma0)
	if maxDegree >= 1 {
		gamma1 := (alpha + 1) * (beta + 1) / (alpha + beta + 3) * gamma0
		scale := math.Sqrt(gamma0 / gamma1)
		a[1] = (alpha + beta + 2) / 2 * scale
		b[1] = (alpha - beta) / 2 * scale
	}
	// P_{k} = ((x - bk)·P_{k-1} - aPrev·P_{k-2}) / aCur, with the aPrev/aCur
	// sequence of the normalized recurrence.
	aPrev := 2 / (2 + alpha + beta) * math.Sqrt((alpha+1)*(beta+1)/(alpha+beta+3))
	for k := 2; k <= maxDegree; k++ {
		i := float64(k - 1)
		h1 := 2*i + alpha + beta
		aCur := 2 / (h1 + 2) * math.Sqrt((i+1)*(i+1+alpha+beta)*(i+1+alpha)*(i+1+beta)/((h1+1)*(h1+3)))
		bk := -(alpha*alpha - beta*beta) / (h1 * (h1 + 2))
		a[k] = 1 / aCur
		b[k] = -bk / aCur
		c[k] = -aPrev / aCur
		aPrev = aCur
	}
	return &OrthPoly{a: a, b: b, c: c}
}

// Legendre creates the L²-normalized Legendre polynomials, the alpha=beta=0
// Jacobi family.
func Legendre(maxDegree int) *OrthPoly {
	return Jacobi(0, 0, maxDegree)
}

// Size returns the number of basis functions.
func (p *OrthPoly) Size() int { return len(p.a) }

// Eval fills dst with P_0(x) … P_n(x) and returns dst (reallocated if too
// short).
func (p *OrthPoly) Eval(x float64, dst []float64) []float64 {
	dst = ensure(dst, p.Size())
	dst[0] = p.a[0]
	if len(dst) > 1 {
		dst[1] = (p.a[1]*x + p.b[1]) * dst[0]
	}
	for k := 2; k < len(dst); k++ {
		dst[k] = (p.a[k]*x+p.b[k])*dst[k-1] + p.c[k]*dst[k-2]
	}
	return dst
}

// EvalDeriv fills dst with the values and ddst with the derivatives of
// P_0 … P_n at x, obtained by differentiating the recurrence, and returns
// both.
func (p *OrthPoly) EvalDeriv(x float64, dst, ddst []float64) (values, derivatives []float64) {
	dst = p.Eval(x, dst)
	ddst = ensure(ddst, p.Size())
	ddst[0] = 0
	if len(ddst) > 1 {
		ddst[1] = p.a[1] * dst[0]
	}
	for k := 2; k < len(ddst); k++ {
		ddst[k] = p.a[k]*dst[k-1] + (p.a[k]*x+p.b[k])*ddst[k-1] + p.c[k]*ddst[k-2]
	}
	return dst, ddst
}
