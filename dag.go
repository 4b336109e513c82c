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
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// NodeID is a unique node id within a DAG: the node's position in the arena.
type NodeID int32

// InvalidNodeID indicates a node that failed to be created.
const InvalidNodeID = NodeID(-1)

// OneNodeID is the id of the constant-one node, always node 0. Correlations
// of length zero map to it.
const OneNodeID = NodeID(0)

type nodeKind uint8

const (
	// kindOne is the constant multiplicative identity.
	kindOne nodeKind = iota
	// kindLeaf copies one entry of the input coefficient vector.
	kindLeaf
	// kindProduct multiplies the values of two earlier nodes.
	kindProduct
)

// node is one entry of the DAG arena. Nodes are plain values: the arena index
// is the identity, children are referenced by id, never by pointer.
type node struct {
	kind nodeKind

	// index is the position in the input vector, for kindLeaf only.
	index int32

	// left and right are the children ids for kindProduct, with
	// left <= right < own id.
	left, right NodeID
}

// DAG is the shared computation graph for one Specification: an arena of
// nodes in topological order (every product's children have strictly smaller
// ids) plus, for each specification entry, the id of the node holding its
// value.
//
// A DAG is immutable once Build returns it and may be shared freely across
// goroutines. Per-call state (value and adjoint buffers) always lives in
// caller-provided or freshly allocated slices, never in the DAG.
type DAG struct {
	nodes   []node
	outputs []NodeID

	inputDim    int
	numLeaves   int
	numProducts int
}

// NumNodes returns the size of the node arena, which is also the required
// length of the value buffers passed to Forward and Pullback.
func (d *DAG) NumNodes() int { return len(d.nodes) }

// NumOutputs returns the number of outputs, one per specification entry.
func (d *DAG) NumOutputs() int { return len(d.outputs) }

// NumLeaves returns the number of distinct basis indices referenced.
func (d *DAG) NumLeaves() int { return d.numLeaves }

// NumProducts returns the number of multiplication nodes: the cost, in
// multiplications, of one forward evaluation.
func (d *DAG) NumProducts() int { return d.numProducts }

// InputDim is the minimum length of a coefficient vector the DAG can be
// evaluated on.
func (d *DAG) InputDim() int { return d.inputDim }

// OutputID returns the id of the node holding the value of the entryIdx-th
// specification entry.
func (d *DAG) OutputID(entryIdx int) NodeID { return d.outputs[entryIdx] }

// Reconstruct expands every output node back to its normalized multi-index,
// returning the Specification the DAG computes. It is the inverse of Build
// and exists for validation: a correct builder satisfies
// dag.Reconstruct().Correlations() == spec.Correlations().
func (d *DAG) Reconstruct() *Specification {
	expansions := make([][]int, len(d.nodes))
	for id, n := range d.nodes {
		switch n.kind {
		case kindOne:
			expansions[id] = []int{}
		case kindLeaf:
			expansions[id] = []int{int(n.index)}
		case kindProduct:
			left, right := expansions[n.left], expansions[n.right]
			indices := make([]int, 0, len(left)+len(right))
			indices = append(indices, left...)
			indices = append(indices, right...)
			slices.Sort(indices)
			expansions[id] = indices
		}
	}
	correlations := make([][]int, len(d.outputs))
	for entryIdx, id := range d.outputs {
		indices := slices.Clone(expansions[id])
		if indices == nil {
			indices = []int{} // slices.Clone maps empty to nil.
		}
		correlations[entryIdx] = indices
	}
	// Built directly: the expansion of a valid DAG needs no re-validation.
	return &Specification{correlations: correlations, inputDim: d.inputDim}
}

// String lists the arena node by node, in topological order.
func (d *DAG) String() string {
	parts := []string{fmt.Sprintf("DAG: %s nodes (%s leaves, %s products), %s outputs",
		humanize.Comma(int64(len(d.nodes))), humanize.Comma(int64(d.numLeaves)),
		humanize.Comma(int64(d.numProducts)), humanize.Comma(int64(len(d.outputs))))}
	for id, n := range d.nodes {
		switch n.kind {
		case kindOne:
			parts = append(parts, fmt.Sprintf("#%d\tOne", id))
		case kindLeaf:
			parts = append(parts, fmt.Sprintf("#%d\tLeaf(A[%d])", id, n.index))
		case kindProduct:
			parts = append(parts, fmt.Sprintf("#%d\tProduct(#%d, #%d)", id, n.left, n.right))
		}
	}
	return strings.Join(parts, "\n")
}
