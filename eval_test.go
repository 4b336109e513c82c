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

package symprod_test

import (
	"fmt"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/gomlx/symprod"
	"github.com/gomlx/symprod/symprodtest"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"
)

func TestEvalConcreteScenario(t *testing.T) {
	spec := must.M1(symprod.NewSpecification([][]int{{}, {0}, {1}, {0, 1}}))
	dag := must.M1(symprod.Build(spec))

	a, b := complex(1.5, -0.5), complex(-2.0, 3.0)
	out := must.M1(symprod.Eval(dag, []complex128{a, b}))
	require.Equal(t, []complex128{1, a, b, a * b}, out)

	// Real scalars through the same DAG.
	outReal := must.M1(symprod.Eval(dag, []float64{3, 5}))
	require.Equal(t, []float64{1, 3, 5, 15}, outReal)
}

func TestEvalMatchesNaive(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			spec := symprodtest.RandomSpec(rng, 40, 5, 8)
			dag := must.M1(symprod.Build(spec))

			a := symprodtest.RandomComplexVector(rng, spec.InputDim())
			got := must.M1(symprod.Eval(dag, a))
			want := symprodtest.Naive(spec, a)
			require.Len(t, got, spec.Len())
			for entryIdx := range want {
				require.InDelta(t, 0, cmplx.Abs(got[entryIdx]-want[entryIdx]), 1e-12,
					"correlation #%d (%v)", entryIdx, spec.At(entryIdx))
			}

			aReal := symprodtest.RandomVector(rng, spec.InputDim())
			gotReal := must.M1(symprod.Eval(dag, aReal))
			wantReal := symprodtest.Naive(spec, aReal)
			for entryIdx := range wantReal {
				require.InDelta(t, wantReal[entryIdx], gotReal[entryIdx], 1e-12)
			}
		})
	}
}

func TestEvalConstantFeature(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	spec := symprodtest.RandomSpec(rng, 10, 4, 5) // Entry 0 is the empty correlation.
	dag := must.M1(symprod.Build(spec))
	for trial := 0; trial < 5; trial++ {
		out := must.M1(symprod.Eval(dag, symprodtest.RandomComplexVector(rng, spec.InputDim())))
		require.Equal(t, complex128(1), out[0])
	}
}

func TestEvalIndexOutOfRange(t *testing.T) {
	spec := must.M1(symprod.NewSpecification([][]int{{4}}))
	dag := must.M1(symprod.Build(spec))
	_, err := symprod.Eval(dag, []float64{1, 2, 3})
	require.ErrorIs(t, err, symprod.ErrIndexOutOfRange)

	// The DAG stays valid, a long-enough input works afterwards.
	out := must.M1(symprod.Eval(dag, []float64{0, 0, 0, 0, 7}))
	require.Equal(t, []float64{7}, out)
}

func TestEvalBatchMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	spec := symprodtest.RandomSpec(rng, 30, 4, 6)
	dag := must.M1(symprod.Build(spec))

	const numRows = 17
	rows := make([][]complex128, numRows)
	for rowIdx := range rows {
		rows[rowIdx] = symprodtest.RandomComplexVector(rng, spec.InputDim())
	}
	batch := must.M1(symprod.EvalBatch(dag, rows))
	require.Len(t, batch, numRows)
	for rowIdx, row := range rows {
		serial := must.M1(symprod.Eval(dag, row))
		require.Equal(t, serial, batch[rowIdx], "row %d", rowIdx)
	}
}

func TestForwardScratchReuse(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	spec := symprodtest.RandomSpec(rng, 20, 4, 6)
	dag := must.M1(symprod.Build(spec))

	values := make([]float64, dag.NumNodes())
	out := make([]float64, dag.NumOutputs())
	for trial := 0; trial < 3; trial++ {
		a := symprodtest.RandomVector(rng, spec.InputDim())
		require.NoError(t, symprod.Forward(dag, a, values))
		symprod.Outputs(dag, values, out)
		want := symprodtest.Naive(spec, a)
		for entryIdx := range want {
			require.InDelta(t, want[entryIdx], out[entryIdx], 1e-12)
		}
	}
}
