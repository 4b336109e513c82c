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

// Package basis implements the one-particle basis evaluators that produce
// the coefficient vectors consumed by the symprod engine: Chebyshev
// polynomials, general orthogonal polynomials (with a Jacobi constructor),
// a complex trigonometric basis, a B-spline radial basis and complex
// spherical harmonics.
//
// Each evaluator fills a dense vector indexed by basis-function position, so
// that index i of a multi-index in a symprod.Specification refers to entry i
// of the vector the evaluator produces. The evaluators are stateless after
// construction and safe for concurrent use.
//
// All Eval* methods take a destination slice and return it, reallocating
// only when the destination is too short, so buffers can be reused across
// calls:
//
//	cheb := basis.NewChebyshev(7)
//	var buf []float64
//	for _, x := range samples {
//		buf = cheb.Eval(x, buf)
//		// … feed buf to symprod.Forward …
//	}
package basis

// ensure reuses dst if it has enough capacity, otherwise allocates.
func ensure[T any](dst []T, size int) []T {
	if cap(dst) < size {
		return make([]T, size)
	}
	return dst[:size]
}
