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

// Forward evaluates every node of the DAG for the input coefficient vector a,
// writing the per-node values into the caller-owned buffer values, which must
// have length >= dag.NumNodes(). One topological sweep: leaves copy from a,
// products multiply two already-computed children.
//
// Use Forward (instead of Eval) when the node values are needed afterwards
// for Pullback, or to reuse a scratch buffer across calls. The buffer is only
// borrowed for the duration of the call.
//
// It fails, wrapping ErrIndexOutOfRange, if len(a) < dag.InputDim().
func Forward[T Scalar](dag *DAG, a []T, values []T) error {
	if len(a) < dag.inputDim {
		return errors.Wrapf(ErrIndexOutOfRange, "input has %d coefficients, the graph references indices up to %d",
			len(a), dag.inputDim-1)
	}
	if len(values) < len(dag.nodes) {
		return errors.Errorf("values buffer has length %d, the DAG has %d nodes", len(values), len(dag.nodes))
	}
	for id, n := range dag.nodes {
		switch n.kind {
		case kindOne:
			values[id] = 1
		case kindLeaf:
			values[id] = a[n.index]
		case kindProduct:
			values[id] = values[n.left] * values[n.right]
		}
	}
	return nil
}

// Outputs gathers the output values (one per specification entry, in
// specification order) from a node-value buffer filled by Forward. out must
// have length >= dag.NumOutputs().
func Outputs[T Scalar](dag *DAG, values []T, out []T) {
	for entryIdx, id := range dag.outputs {
		out[entryIdx] = values[id]
	}
}

// Eval evaluates the correlations for one input coefficient vector a and
// returns one value per specification entry, in specification order.
//
// It fails, wrapping ErrIndexOutOfRange, if len(a) < dag.InputDim().
func Eval[T Scalar](dag *DAG, a []T) ([]T, error) {
	values := make([]T, len(dag.nodes))
	if err := Forward(dag, a, values); err != nil {
		return nil, err
	}
	out := make([]T, len(dag.outputs))
	Outputs(dag, values, out)
	return out, nil
}

// ForwardBatch runs Forward independently for every row of a batch and
// returns the per-row node-value buffers, the input to PullbackBatch. Rows
// are data-parallel and evaluated concurrently.
func ForwardBatch[T Scalar](dag *DAG, rows [][]T) ([][]T, error) {
	values := make([][]T, len(rows))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for rowIdx, row := range rows {
		group.Go(func() error {
			rowValues := make([]T, len(dag.nodes))
			if err := Forward(dag, row, rowValues); err != nil {
				return errors.WithMessagef(err, "row %d", rowIdx)
			}
			values[rowIdx] = rowValues
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}

// EvalBatch evaluates the correlations for every row of a batch, returning
// one output row (in specification order) per input row. Rows are
// data-parallel and evaluated concurrently; row i of the result is identical
// to Eval(dag, rows[i]).
func EvalBatch[T Scalar](dag *DAG, rows [][]T) ([][]T, error) {
	out := make([][]T, len(rows))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for rowIdx, row := range rows {
		group.Go(func() error {
			values := make([]T, len(dag.nodes))
			if err := Forward(dag, row, values); err != nil {
				return errors.WithMessagef(err, "row %d", rowIdx)
			}
			rowOut := make([]T, len(dag.outputs))
			Outputs(dag, values, rowOut)
			out[rowIdx] = rowOut
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
