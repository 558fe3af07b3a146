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
package bit

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Set provides a straightforward bitset implementation. That is, a set of
// (unsigned) integer values implemented as an array of bits.
type Set struct {
	words []uint64
}

// Clone creates a true copy of this bitset which ensures no aliasing between
// this set and the result.
func (p *Set) Clone() Set {
	return Set{slices.Clone(p.words)}
}

// Insert a given value into this set.
func (p *Set) Insert(val uint) {
	word := val / 64
	bit := val % 64
	//
	for uint(len(p.words)) <= word {
		p.words = append(p.words, 0)
	}
	// Set bit
	mask := uint64(1) << bit
	p.words[word] = p.words[word] | mask
}

// Contains checks whether a given value is in this set.
func (p *Set) Contains(val uint) bool {
	word := val / 64
	bit := val % 64
	//
	if uint(len(p.words)) <= word {
		return false
	}
	//
	mask := uint64(1) << bit
	//
	return p.words[word]&mask != 0
}

// Count returns the number of values in this set.
func (p *Set) Count() uint {
	count := uint(0)
	//
	for _, w := range p.words {
		count += uint(bits.OnesCount64(w))
	}
	//
	return count
}

// IsEmpty checks whether this set contains any values at all.
func (p *Set) IsEmpty() bool {
	for _, w := range p.words {
		if w != 0 {
			return false
		}
	}
	//
	return true
}

// ToArray returns the values in this set in ascending order.
func (p *Set) ToArray() []uint {
	var vals []uint
	//
	for i, w := range p.words {
		for b := uint(0); b < 64; b++ {
			if w&(uint64(1)<<b) != 0 {
				vals = append(vals, uint(i)*64+b)
			}
		}
	}
	//
	return vals
}

func (p *Set) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, v := range p.ToArray() {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", v))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
