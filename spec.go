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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Specification is an ordered collection of multi-indices ("correlations"),
// each an increasing-sorted sequence of one-particle basis indices whose
// coefficients are multiplied to form one output feature. The entry order
// defines the output order of the evaluators.
//
// A Specification is immutable after creation: create it once with
// NewSpecification, feed it to Build, and discard or keep it for reference.
type Specification struct {
	correlations [][]int
	inputDim     int
}

// NewSpecification normalizes and validates the given multi-indices.
//
// Each multi-index is copied and sorted in increasing order -- the product is
// commutative, so sorting loses nothing and makes structurally equal
// correlations collapse to the same graph node later. The per-entry output
// order is preserved as given.
//
// It fails, wrapping ErrInvalidSpec, if the specification is empty, if any
// index is negative, or if two entries normalize to the same correlation.
// An empty multi-index is valid and denotes the constant feature 1.
func NewSpecification(correlations [][]int) (*Specification, error) {
	if len(correlations) == 0 {
		return nil, errors.Wrap(ErrInvalidSpec, "specification has no correlations")
	}
	spec := &Specification{
		correlations: make([][]int, len(correlations)),
	}
	seen := make(map[string]int, len(correlations))
	for entryIdx, indices := range correlations {
		normalized := slices.Clone(indices)
		if normalized == nil {
			normalized = []int{}
		}
		slices.Sort(normalized)
		if len(normalized) > 0 && normalized[0] < 0 {
			return nil, errors.Wrapf(ErrInvalidSpec, "correlation #%d (%v) contains a negative basis index",
				entryIdx, indices)
		}
		key := correlationKey(normalized)
		if previous, found := seen[key]; found {
			return nil, errors.Wrapf(ErrInvalidSpec, "correlation #%d (%v) duplicates correlation #%d",
				entryIdx, indices, previous)
		}
		seen[key] = entryIdx
		spec.correlations[entryIdx] = normalized
		if len(normalized) > 0 {
			spec.inputDim = max(spec.inputDim, normalized[len(normalized)-1]+1)
		}
	}
	return spec, nil
}

// Len returns the number of correlations, which is also the number of
// outputs of the evaluators of a DAG built from this Specification.
func (s *Specification) Len() int { return len(s.correlations) }

// At returns the entryIdx-th normalized multi-index. The returned slice is
// owned by the Specification and must not be modified.
func (s *Specification) At(entryIdx int) []int { return s.correlations[entryIdx] }

// Correlations returns all normalized multi-indices in output order. The
// returned slices are owned by the Specification and must not be modified.
func (s *Specification) Correlations() [][]int { return s.correlations }

// InputDim is the minimum length of a coefficient vector this specification
// can be evaluated on: the largest referenced basis index plus one.
func (s *Specification) InputDim() int { return s.inputDim }

// MaxOrder returns the length of the longest multi-index, the highest
// correlation order in the specification.
func (s *Specification) MaxOrder() int {
	maxOrder := 0
	for _, indices := range s.correlations {
		maxOrder = max(maxOrder, len(indices))
	}
	return maxOrder
}

// String lists the correlations in output order.
func (s *Specification) String() string {
	var parts []string
	for entryIdx, indices := range s.correlations {
		parts = append(parts, "#"+strconv.Itoa(entryIdx)+": "+correlationKey(indices))
	}
	return "Specification{" + strings.Join(parts, ", ") + "}"
}

// correlationKey serializes a normalized multi-index, used for duplicate
// detection and for printing.
func correlationKey(indices []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for pos, index := range indices {
		if pos > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(index))
	}
	b.WriteByte(']')
	return b.String()
}

// compareCorrelations orders multi-indices by length first and
// lexicographically second: the deterministic build order that makes shorter
// sub-products available before the longer correlations that reuse them.
func compareCorrelations(a, b []int) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return slices.Compare(a, b)
}
