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
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// pairKey identifies a product node by its unordered child pair: the key of
// the hash-consing table, so that every sub-product is built exactly once.
type pairKey struct {
	lo, hi NodeID
}

// builder holds the mutable state of one Build call. It is discarded once
// the DAG is assembled.
type builder struct {
	nodes       []node
	leaves      map[int]NodeID
	products    map[pairKey]NodeID
	numProducts int
}

// Build factorizes the specification into a DAG of binary products with
// maximal sharing of common sub-products.
//
// Correlations are processed shortest first (ties broken lexicographically),
// so that by the time a long correlation is factorized all its shorter
// sub-products already have nodes to reuse. Each correlation of length >= 2
// is split head/tail over its sorted indices; both halves are hash-consed,
// the head by basis index and the product by unordered child pair.
//
// The returned DAG is immutable, and its node order is a valid topological
// order: children of every product have strictly smaller ids.
//
// It fails, wrapping ErrInvalidSpec, on a nil or empty specification.
func Build(spec *Specification) (*DAG, error) {
	if spec == nil || spec.Len() == 0 {
		return nil, errors.Wrap(ErrInvalidSpec, "cannot build a DAG from an empty specification")
	}
	b := &builder{
		leaves:   make(map[int]NodeID),
		products: make(map[pairKey]NodeID),
	}
	b.nodes = append(b.nodes, node{kind: kindOne}) // Node 0 is always the constant 1.

	buildOrder := make([]int, spec.Len())
	for entryIdx := range buildOrder {
		buildOrder[entryIdx] = entryIdx
	}
	slices.SortStableFunc(buildOrder, func(i, j int) int {
		return compareCorrelations(spec.At(i), spec.At(j))
	})

	outputs := make([]NodeID, spec.Len())
	for _, entryIdx := range buildOrder {
		outputs[entryIdx] = b.correlation(spec.At(entryIdx))
	}

	dag := &DAG{
		nodes:       slices.Clip(b.nodes),
		outputs:     outputs,
		inputDim:    spec.InputDim(),
		numLeaves:   len(b.leaves),
		numProducts: b.numProducts,
	}
	if klog.V(1).Enabled() {
		klog.Infof("symprod: built DAG with %s nodes (%s leaves, %s products) for %s correlations",
			humanize.Comma(int64(dag.NumNodes())), humanize.Comma(int64(dag.numLeaves)),
			humanize.Comma(int64(dag.numProducts)), humanize.Comma(int64(spec.Len())))
	}
	return dag, nil
}

// correlation returns the node computing the product of the given sorted
// multi-index, creating nodes as needed.
func (b *builder) correlation(indices []int) NodeID {
	switch len(indices) {
	case 0:
		return OneNodeID
	case 1:
		return b.leaf(indices[0])
	}
	head := b.leaf(indices[0])
	tail := b.correlation(indices[1:])
	return b.product(head, tail)
}

// leaf returns the unique node reading A[index], creating it on first use.
func (b *builder) leaf(index int) NodeID {
	if id, found := b.leaves[index]; found {
		return id
	}
	id := b.register(node{kind: kindLeaf, index: int32(index)})
	b.leaves[index] = id
	return id
}

// product returns the node multiplying x and y, reusing an existing node for
// the same unordered pair if there is one.
func (b *builder) product(x, y NodeID) NodeID {
	key := pairKey{lo: x, hi: y}
	if key.lo > key.hi {
		key.lo, key.hi = key.hi, key.lo
	}
	if id, found := b.products[key]; found {
		return id
	}
	id := b.register(node{kind: kindProduct, left: key.lo, right: key.hi})
	b.products[key] = id
	b.numProducts++
	return id
}

// register appends a node to the arena and returns its id, checking the
// topological invariant. A violation is a bug in the factorization, not a
// user error, so it aborts loudly.
func (b *builder) register(n node) NodeID {
	id := NodeID(len(b.nodes))
	if n.kind == kindProduct && (n.left < 0 || n.left >= id || n.right < 0 || n.right >= id) {
		exceptions.Panicf("symprod: internal error: product node #%d references unbuilt children (#%d, #%d)",
			id, n.left, n.right)
	}
	b.nodes = append(b.nodes, n)
	return id
}
