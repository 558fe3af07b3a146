// Copyright The go-tableau Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package set

import (
	"math"
	"slices"
	"sort"
)

// Comparable provides an interface which types used in a Sorted set must
// implement.
type Comparable[T any] interface {
	// Cmp returns < 0 if this is less than other, or 0 if they are equal, or >
	// 0 if this is greater than other.
	Cmp(other T) int
}

// Sorted is an array of unique sorted values (i.e. no duplicates).  Insertion
// keeps the array sorted, meaning membership is a binary search and iteration
// order is deterministic.
type Sorted[T Comparable[T]] []T

// New creates a sorted set from zero or more items, discarding duplicates.
func New[T Comparable[T]](items ...T) *Sorted[T] {
	var nitems Sorted[T] = slices.Clone(items)
	// Sort incoming data
	slices.SortFunc(nitems, func(a, b T) int {
		return a.Cmp(b)
	})
	// Remove duplicates
	nitems = slices.CompactFunc(nitems, func(a, b T) bool {
		return a.Cmp(b) == 0
	})
	//
	return &nitems
}

// ToArray extracts the underlying array from this sorted set.
func (p *Sorted[T]) ToArray() []T {
	return *p
}

// Find returns the index of the matching element in this set, or it returns
// MaxUint.
func (p *Sorted[T]) Find(element T) uint {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(data), func(i int) bool {
		// element <= data[i]
		return element.Cmp(data[i]) <= 0
	})
	// Check whether item existed or not.
	if i < len(data) && data[i].Cmp(element) == 0 {
		return uint(i)
	}
	// not found
	return math.MaxUint
}

// Contains returns true if a given element is in the set.
func (p *Sorted[T]) Contains(element T) bool {
	return p.Find(element) != math.MaxUint
}

// Insert an element into this sorted set, whilst returning true if it was
// newly added (i.e. not already present).
func (p *Sorted[T]) Insert(element T) bool {
	data := *p
	// Find insertion point
	i := sort.Search(len(data), func(i int) bool {
		return element.Cmp(data[i]) <= 0
	})
	// Check whether already present
	if i < len(data) && data[i].Cmp(element) == 0 {
		return false
	}
	// Make space, then shift everything up one
	data = append(data, element)
	copy(data[i+1:], data[i:])
	data[i] = element
	//
	*p = data
	//
	return true
}

// InsertAll inserts zero or more elements into this sorted set.
func (p *Sorted[T]) InsertAll(elements ...T) {
	for _, e := range elements {
		p.Insert(e)
	}
}

// Remove an element from this sorted set, whilst returning true if it was
// actually present.
func (p *Sorted[T]) Remove(element T) bool {
	if i := p.Find(element); i != math.MaxUint {
		*p = slices.Delete(*p, int(i), int(i)+1)
		return true
	}
	// Nothing doing
	return false
}

// Clone creates a true copy of this set which ensures no aliasing between this
// set and the result.
func (p *Sorted[T]) Clone() Sorted[T] {
	return slices.Clone(*p)
}

// Compare two sorted arrays of comparable items lexicographically.  Shorter
// arrays order before longer ones when they share a common prefix.
func Compare[T Comparable[T]](lhs []T, rhs []T) int {
	n := min(len(lhs), len(rhs))
	//
	for i := range n {
		if c := lhs[i].Cmp(rhs[i]); c != 0 {
			return c
		}
	}
	//
	switch {
	case len(lhs) < len(rhs):
		return -1
	case len(lhs) > len(rhs):
		return 1
	}
	//
	return 0
}
