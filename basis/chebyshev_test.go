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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChebyshevClosedForm(t *testing.T) {
	cheb := NewChebyshev(8)
	require.Equal(t, 9, cheb.Size())
	var buf []float64
	for _, x := range []float64{-1, -0.7, -0.3, 0, 0.25, 0.6, 1} {
		buf = cheb.Eval(x, buf)
		for n := 0; n <= 8; n++ {
			want := math.Cos(float64(n) * math.Acos(x))
			require.InDelta(t, want, buf[n], 1e-12, "T_%d(%g)", n, x)
		}
	}
}

func TestChebyshevDeriv(t *testing.T) {
	cheb := NewChebyshev(6)
	var values, derivatives []float64
	const h = 1e-6
	for _, x := range []float64{-0.8, -0.2, 0.1, 0.5, 0.9} {
		values, derivatives = cheb.EvalDeriv(x, values, derivatives)
		plus := cheb.Eval(x+h, nil)
		minus := cheb.Eval(x-h, nil)
		for n := 0; n <= 6; n++ {
			require.InDelta(t, values[n], math.Cos(float64(n)*math.Acos(x)), 1e-12)
			require.InDelta(t, (plus[n]-minus[n])/(2*h), derivatives[n], 1e-6, "T'_%d(%g)", n, x)
		}
	}
}

func TestChebyshevScratchReuse(t *testing.T) {
	cheb := NewChebyshev(4)
	buf := make([]float64, 16)
	out := cheb.Eval(0.5, buf)
	require.Len(t, out, 5)
	require.Same(t, &buf[0], &out[0], "a large-enough buffer must be reused")
}
