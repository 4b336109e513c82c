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

// Package symprod evaluates sparse symmetric products of one-particle basis
// coefficients, the higher-order features used by ACE-style machine-learning
// interatomic potentials.
//
// A feature ("correlation") is the product of a few entries of a coefficient
// vector A, selected by a multi-index: the correlation [0, 1, 1] over
// A = [a, b, ...] has value a*b*b. A Specification is an ordered list of such
// multi-indices. Build factorizes the whole specification into a single
// directed acyclic graph (DAG) of binary products, merging every repeated
// sub-product into one shared node, so that evaluating all correlations
// costs far fewer multiplications than evaluating each one from scratch.
//
// The main elements of the package are:
//
//   - Specification: the ordered list of multi-indices, normalized (sorted)
//     and validated. Created once with NewSpecification.
//
//   - DAG: the shared computation graph produced by Build. It is immutable
//     after construction and safe to share across goroutines; one DAG is
//     typically reused for millions of evaluation calls.
//
//   - Eval / EvalBatch: forward evaluation, one topological sweep over the
//     node arena per input row. Forward exposes the per-node value buffer
//     for callers that also need gradients, and accepts caller-owned scratch
//     so buffers can be pooled across calls.
//
//   - Pullback / PullbackBatch: reverse-mode differentiation. Given the
//     forward value buffer and one adjoint per output, a single reverse
//     sweep accumulates the gradient of adjoints·outputs with respect to A.
//
// All evaluation entry points are generic over Scalar, so the same DAG
// serves real and complex one-particle bases (see the basis package for
// evaluators producing the input vector A).
package symprod

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Scalar are the numeric types the evaluators operate on. The DAG itself is
// purely structural and independent of the scalar type, so one graph can be
// evaluated with float64 inputs in one call and complex128 in the next.
type Scalar interface {
	constraints.Float | constraints.Complex
}

var (
	// ErrInvalidSpec is returned (wrapped) by NewSpecification and Build for
	// malformed specifications: a negative basis index, a duplicate
	// correlation, or an empty specification. The caller must fix the
	// specification; there is nothing to retry.
	ErrInvalidSpec = errors.New("invalid specification")

	// ErrIndexOutOfRange is returned (wrapped) by the evaluators when the
	// input coefficient vector is shorter than the largest basis index the
	// graph references plus one. The DAG remains valid, and the call can be
	// repeated with a long-enough input.
	ErrIndexOutOfRange = errors.New("coefficient vector too short for the graph")
)
