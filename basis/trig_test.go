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
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrigClosedForm(t *testing.T) {
	trig := NewTrig(5)
	require.Equal(t, 11, trig.Size())
	var buf []complex128
	for _, theta := range []float64{0, 0.3, 1.1, 2.9, -1.7} {
		buf = trig.Eval(theta, buf)
		for m := -5; m <= 5; m++ {
			want := cmplx.Exp(complex(0, float64(m)*theta))
			require.InDelta(t, 0, cmplx.Abs(buf[trig.Index(m)]-want), 1e-12, "m=%d theta=%g", m, theta)
		}
	}
}

func TestTrigIndexLayout(t *testing.T) {
	trig := NewTrig(3)
	// m = 0, 1, -1, 2, -2, 3, -3.
	require.Equal(t, 0, trig.Index(0))
	require.Equal(t, 1, trig.Index(1))
	require.Equal(t, 2, trig.Index(-1))
	require.Equal(t, 3, trig.Index(2))
	require.Equal(t, 6, trig.Index(-3))
}

func TestTrigDeriv(t *testing.T) {
	trig := NewTrig(4)
	var values, derivatives []complex128
	const h = 1e-6
	for _, theta := range []float64{0.2, 1.3, -0.8} {
		values, derivatives = trig.EvalDeriv(theta, values, derivatives)
		plus := trig.Eval(theta+h, nil)
		minus := trig.Eval(theta-h, nil)
		for m := -4; m <= 4; m++ {
			pos := trig.Index(m)
			fd := (plus[pos] - minus[pos]) / complex(2*h, 0)
			require.InDelta(t, 0, cmplx.Abs(fd-derivatives[pos]), 1e-6, "m=%d", m)
			require.InDelta(t, 0, cmplx.Abs(values[pos]-cmplx.Exp(complex(0, float64(m)*theta))), 1e-12)
		}
	}
}
