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

package symprod

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// This file implements reverse-mode differentiation ("pullback") through the
// shared DAG. The reverse sweep is the exact dual of Forward: output adjoints
// are scattered onto their nodes, then every product node, visited once in
// reverse topological order, pushes g*v to its left child and g*u to its
// right child (product rule), and finally the leaf adjoints are read off
// into input-coefficient slots. Sharing that saved multiplications forward
// saves multiply-adds backward, since each node is visited exactly once in
// each direction no matter how many outputs depend on it.

// Pullback computes the gradient of outputAdjoints·outputs with respect to
// the input coefficient vector, given the node-value buffer values filled by
// a previous Forward call on that input.
//
// outputAdjoints holds one adjoint ("incoming gradient") per specification
// entry, in specification order. The result has length dag.InputDim(), with
// zeros at basis indices no correlation references.
func Pullback[T Scalar](dag *DAG, values, outputAdjoints []T) ([]T, error) {
	grad := make([]T, dag.inputDim)
	nodeAdjoints := make([]T, len(dag.nodes))
	if err := PullbackInto(dag, values, outputAdjoints, grad, nodeAdjoints); err != nil {
		return nil, err
	}
	return grad, nil
}

// PullbackInto is Pullback with caller-owned destination and scratch
// buffers, for callers that pool allocations across many calls: grad must
// have length >= dag.InputDim() and nodeAdjoints length >= dag.NumNodes().
// Both are fully overwritten; the buffers are only borrowed for the duration
// of the call.
func PullbackInto[T Scalar](dag *DAG, values, outputAdjoints, grad, nodeAdjoints []T) error {
	if len(values) < len(dag.nodes) {
		return errors.Errorf("values buffer has length %d, the DAG has %d nodes", len(values), len(dag.nodes))
	}
	if len(outputAdjoints) != len(dag.outputs) {
		return errors.Errorf("got %d output adjoints, the DAG has %d outputs", len(outputAdjoints), len(dag.outputs))
	}
	if len(grad) < dag.inputDim {
		return errors.Errorf("gradient buffer has length %d, the graph references indices up to %d",
			len(grad), dag.inputDim-1)
	}
	if len(nodeAdjoints) < len(dag.nodes) {
		return errors.Errorf("adjoints buffer has length %d, the DAG has %d nodes", len(nodeAdjoints), len(dag.nodes))
	}

	clear(nodeAdjoints[:len(dag.nodes)])
	clear(grad[:dag.inputDim])

	// Scatter: summed, not assigned, since several outputs may share a node
	// (e.g. several entries collapsing onto the constant node).
	for entryIdx, id := range dag.outputs {
		nodeAdjoints[id] += outputAdjoints[entryIdx]
	}

	// Reverse topological sweep. For a self-product (left == right) both
	// product-rule terms land on the same child, doubling its adjoint --
	// which is exactly d(u*u) = 2u·du.
	for id := len(dag.nodes) - 1; id > 0; id-- {
		n := &dag.nodes[id]
		if n.kind != kindProduct {
			continue
		}
		g := nodeAdjoints[id]
		nodeAdjoints[n.left] += g * values[n.right]
		nodeAdjoints[n.right] += g * values[n.left]
	}

	// Read off the leaves. The constant node's adjoint is discarded.
	for id, n := range dag.nodes {
		if n.kind == kindLeaf {
			grad[n.index] = nodeAdjoints[id]
		}
	}
	return nil
}

// PullbackBatch runs Pullback independently per row: values holds one
// node-value buffer per row (as returned by ForwardBatch) and outputAdjoints
// one adjoint row per input row. Rows are data-parallel and evaluated
// concurrently; row i of the result is identical to
// Pullback(dag, values[i], outputAdjoints[i]).
func PullbackBatch[T Scalar](dag *DAG, values, outputAdjoints [][]T) ([][]T, error) {
	if len(values) != len(outputAdjoints) {
		return nil, errors.Errorf("got %d value rows but %d adjoint rows", len(values), len(outputAdjoints))
	}
	grads := make([][]T, len(values))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for rowIdx := range values {
		group.Go(func() error {
			grad, err := Pullback(dag, values[rowIdx], outputAdjoints[rowIdx])
			if err != nil {
				return errors.WithMessagef(err, "row %d", rowIdx)
			}
			grads[rowIdx] = grad
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return grads, nil
}
