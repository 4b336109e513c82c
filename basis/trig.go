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

// Trig evaluates the complex trigonometric basis e^{imθ} for frequencies
// m = 0, 1, -1, 2, -2, …, ±maxFreq, used for angular coordinates.
type Trig struct {
	maxFreq int
}

// NewTrig creates an evaluator for frequencies up to ±maxFreq. It panics if
// maxFreq is negative.
func NewTrig(maxFreq int) *Trig {
	if maxFreq < 0 {
		exceptions.Panicf("basis: NewTrig(maxFreq=%d): maxFreq must be >= 0", maxFreq)
	}
	return &Trig{maxFreq: maxFreq}
}

// Size returns the number of basis functions, 2*maxFreq+1.
func (t *Trig) Size() int { return 2*t.maxFreq + 1 }

// Index returns the position of frequency m in the output vector: 0 for
// m=0, 2m-1 for m>0 and -2m for m<0.
func (t *Trig) Index(m int) int {
	if m > 0 {
		return 2*m - 1
	}
	return -2 * m
}

// Eval fills dst with e^{imθ} in the order m = 0, 1, -1, 2, -2, …, built
// incrementally from e^{iθ}, and returns dst (reallocated if too short).
func (t *Trig) Eval(theta float64, dst []complex128) []complex128 {
	dst = ensure(dst, t.Size())
	dst[0] = 1
	unit := complex(math.Cos(theta), math.Sin(theta))
	power := complex128(1)
	for m := 1; m <= t.maxFreq; m++ {
		power *= unit
		dst[t.Index(m)] = power
		dst[t.Index(-m)] = complex(real(power), -imag(power))
	}
	return dst
}

// EvalDeriv fills dst with the values and ddst with the θ-derivatives
// im·e^{imθ}, returning both.
func (t *Trig) EvalDeriv(theta float64, dst, ddst []complex128) (values, derivatives []complex128) {
	dst = t.Eval(theta, dst)
	ddst = ensure(ddst, t.Size())
	for m := -t.maxFreq; m <= t.maxFreq; m++ {
		pos := t.Index(m)
		ddst[pos] = complex(0, float64(m)) * dst[pos]
	}
	return dst, ddst
}
