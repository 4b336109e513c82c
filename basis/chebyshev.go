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

import "github.com/gomlx/exceptions"

// Chebyshev evaluates the Chebyshev polynomials of the first kind T_0 … T_n
// on [-1, 1], the standard transfer basis for radial functions in
// interatomic potentials.
type Chebyshev struct {
	maxDegree int
}

// NewChebyshev creates an evaluator for T_0 … T_maxDegree. It panics if
// maxDegree is negative.
func NewChebyshev(maxDegree int) *Chebyshev {
	if maxDegree < 0 {
		exceptions.Panicf("basis: NewChebyshev(maxDegree=%d): maxDegree must be >= 0", maxDegree)
	}
	return &Chebyshev{maxDegree: maxDegree}
}

// Size returns the number of basis functions, maxDegree+1.
func (c *Chebyshev) Size() int { return c.maxDegree + 1 }

// Eval fills dst with T_0(x) … T_n(x) using the three-term recurrence
// T_{k+1} = 2x·T_k - T_{k-1} and returns dst (reallocated if too short).
func (c *Chebyshev) Eval(x float64, dst []float64) []float64 {
	dst = ensure(dst, c.Size())
	dst[0] = 1
	if c.maxDegree == 0 {
		return dst
	}
	dst[1] = x
	for k := 2; k <= c.maxDegree; k++ {
		dst[k] = 2*x*dst[k-1] - dst[k-2]
	}
	return dst
}

// EvalDeriv fills dst with the values and ddst with the derivatives of
// T_0 … T_n at x, returning both. It uses T'_k = k·U_{k-1} with the
// second-kind recurrence U_{k+1} = 2x·U_k - U_{k-1}.
func (c *Chebyshev) EvalDeriv(x float64, dst, ddst []float64) (values, derivatives []float64) {
	dst = c.Eval(x, dst)
	ddst = ensure(ddst, c.Size())
	ddst[0] = 0
	if c.maxDegree == 0 {
		return dst, ddst
	}
	// uPrev, u are U_{k-2} and U_{k-1} while computing T'_k.
	uPrev, u := 0.0, 1.0
	ddst[1] = 1
	for k := 2; k <= c.maxDegree; k++ {
		uPrev, u = u, 2*x*u-uPrev
		ddst[k] = float64(k) * u
	}
	return dst, ddst
}
