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

// Package symprodtest holds test utilities for packages that exercise the
// symprod engine: the naive reference evaluator used as a correctness
// oracle, and deterministic random generators for specifications and input
// vectors.
package symprodtest

import (
	"math/rand"
	"slices"
	"sort"

	"github.com/gomlx/symprod"
	"github.com/janpfeifer/must"
)

// Naive computes each correlation directly from the input vector by repeated
// multiplication, with no graph and no sharing. It is the correctness oracle
// for the DAG-based evaluators: any mismatch is a defect in the builder or
// evaluators, not here.
func Naive[T symprod.Scalar](spec *symprod.Specification, a []T) []T {
	out := make([]T, spec.Len())
	for entryIdx := range out {
		value := T(1)
		for _, index := range spec.At(entryIdx) {
			value *= a[index]
		}
		out[entryIdx] = value
	}
	return out
}

// RandomSpec generates a valid Specification with numCorrelations distinct
// multi-indices of length <= maxOrder over basis indices < inputDim. The
// first entry is always the empty (constant) correlation. Deterministic for
// a given rng state.
func RandomSpec(rng *rand.Rand, numCorrelations, maxOrder, inputDim int) *symprod.Specification {
	correlations := make([][]int, 0, numCorrelations)
	seen := make(map[string]bool, numCorrelations)
	add := func(indices []int) {
		sort.Ints(indices)
		key := keyOf(indices)
		if seen[key] {
			return
		}
		seen[key] = true
		correlations = append(correlations, indices)
	}
	add([]int{})
	for len(correlations) < numCorrelations {
		order := 1 + rng.Intn(maxOrder)
		indices := make([]int, order)
		for pos := range indices {
			indices[pos] = rng.Intn(inputDim)
		}
		add(indices)
	}
	return must.M1(symprod.NewSpecification(correlations))
}

// RandomVector returns n floats uniform in [-1, 1).
func RandomVector(rng *rand.Rand, n int) []float64 {
	a := make([]float64, n)
	for pos := range a {
		a[pos] = 2*rng.Float64() - 1
	}
	return a
}

// RandomComplexVector returns n complex values with real and imaginary parts
// uniform in [-1, 1).
func RandomComplexVector(rng *rand.Rand, n int) []complex128 {
	a := make([]complex128, n)
	for pos := range a {
		a[pos] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}
	return a
}

func keyOf(indices []int) string {
	key := make([]byte, 0, 4*len(indices))
	for _, index := range indices {
		key = append(key, byte(index), byte(index>>8), byte(index>>16), ',')
	}
	return string(slices.Clip(key))
}
