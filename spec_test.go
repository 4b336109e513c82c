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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSpecification(t *testing.T) {
	spec, err := NewSpecification([][]int{{}, {3}, {2, 0, 1}, {1, 1}})
	require.NoError(t, err)
	require.Equal(t, 4, spec.Len())
	require.Equal(t, []int{}, spec.At(0))
	require.Equal(t, []int{3}, spec.At(1))
	require.Equal(t, []int{0, 1, 2}, spec.At(2), "multi-indices must be normalized to increasing order")
	require.Equal(t, []int{1, 1}, spec.At(3))
	require.Equal(t, 4, spec.InputDim())
	require.Equal(t, 3, spec.MaxOrder())

	// Input slices must not be aliased by the Specification.
	indices := []int{5, 4}
	spec, err = NewSpecification([][]int{indices})
	require.NoError(t, err)
	indices[0] = 99
	require.Equal(t, []int{4, 5}, spec.At(0))
}

func TestNewSpecificationErrors(t *testing.T) {
	_, err := NewSpecification(nil)
	require.ErrorIs(t, err, ErrInvalidSpec, "empty specification must be rejected")

	_, err = NewSpecification([][]int{{0, -1}})
	require.ErrorIs(t, err, ErrInvalidSpec, "negative basis index must be rejected")

	_, err = NewSpecification([][]int{{0, 1}, {2}, {1, 0}})
	require.ErrorIs(t, err, ErrInvalidSpec, "duplicate correlations (up to ordering) must be rejected")

	_, err = NewSpecification([][]int{{}, {}})
	require.ErrorIs(t, err, ErrInvalidSpec, "duplicate empty correlations must be rejected")
}

func TestSpecificationString(t *testing.T) {
	spec, err := NewSpecification([][]int{{}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, "Specification{#0: [], #1: [0 1]}", spec.String())
}
