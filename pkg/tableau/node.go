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
package tableau

import (
	"fmt"
	"strings"

	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/util/collection/bit"
	"github.com/modalkit/go-tableau/pkg/util/collection/set"
)

// Status describes the expansion state of a node.
type Status uint8

const (
	// Open is the initial status; further rules may still apply.
	Open Status = iota
	// Closed is terminal: the node holds a contradictory pair of formulas.
	Closed
	// Saturated is terminal for the node's own expansion: no rule applies.
	// A saturated node does not by itself close its branch.
	Saturated
)

func (s Status) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Saturated:
		return "saturated"
	}
	//
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Node is a vertex of the proof tree.  It holds the set of formulas true at
// its world, the world identifier, its expansion status, accessibility edges
// to child worlds, and the set of formulas already consumed by a rule (which
// guards against re-expansion).
type Node struct {
	world    uint
	status   Status
	formulas set.Sorted[logic.Formula]
	// Formulas already processed by a rule at this node.
	expanded set.Sorted[logic.Formula]
	// Worlds reachable from this node's world.  Populated only when a box or
	// diamond formula is expanded.
	accessible bit.Set
	// Non-owning back reference, for traversal only.
	parent   *Node
	children []*Node
}

// NewNode constructs a fresh open node at a given world holding the given
// formulas.
func NewNode(world uint, formulas ...logic.Formula) *Node {
	return &Node{
		world:    world,
		status:   Open,
		formulas: *set.New(formulas...),
	}
}

// World returns this node's world identifier.
func (p *Node) World() uint {
	return p.world
}

// Status returns this node's expansion status.
func (p *Node) Status() Status {
	return p.status
}

// Formulas returns the formulas true at this node, in deterministic (sorted)
// order.  The returned slice is a snapshot: subsequent additions do not
// disturb it.
func (p *Node) Formulas() []logic.Formula {
	snapshot := p.formulas.Clone()
	//
	return snapshot.ToArray()
}

// Parent returns this node's parent, or nil for the root.
func (p *Node) Parent() *Node {
	return p.parent
}

// Children returns this node's children in creation order.
func (p *Node) Children() []*Node {
	return p.children
}

// Accessible returns the worlds reachable from this node's world, in
// ascending order.
func (p *Node) Accessible() []uint {
	return p.accessible.ToArray()
}

// AddFormula inserts a formula into this node, returning true if it was newly
// added and false if it was already present (in which case the call is a
// no-op).
func (p *Node) AddFormula(f logic.Formula) bool {
	return p.formulas.Insert(f)
}

// IsContradictory checks whether this node holds a complementary pair of
// formulas, i.e. some formula together with its syntactic negation.  An empty
// node is never contradictory.
func (p *Node) IsContradictory() bool {
	for _, f := range p.formulas.ToArray() {
		if p.formulas.Contains(f.Negate()) {
			return true
		}
	}
	//
	return false
}

// Close marks this node as closed.  Idempotent.
func (p *Node) Close() {
	p.status = Closed
}

func (p *Node) String() string {
	var builder strings.Builder
	//
	for i, f := range p.formulas.ToArray() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(string(f))
	}
	//
	return fmt.Sprintf("w%d (%s): %s", p.world, p.status, builder.String())
}

// Mark a node as saturated, unless it already closed.
func (p *Node) saturate() {
	if p.status == Open {
		p.status = Saturated
	}
}

// Check whether a given formula was already consumed by a rule at this node.
func (p *Node) isExpanded(f logic.Formula) bool {
	return p.expanded.Contains(f)
}

// Record that a given formula has been consumed by a rule at this node.
func (p *Node) markExpanded(f logic.Formula) {
	p.expanded.Insert(f)
}

// Record a new accessibility edge from this node's world.
func (p *Node) addAccessible(world uint) {
	p.accessible.Insert(world)
}

// Check whether this node has any accessibility edge yet.
func (p *Node) hasAccessible() bool {
	return !p.accessible.IsEmpty()
}

// Append a child node, wiring up its parent back reference.
func (p *Node) addChild(child *Node) {
	child.parent = p
	p.children = append(p.children, child)
}

// Construct a child of this node at a given world.  The child inherits this
// node's formulas minus the given formula, along with a copy of the expanded
// set, plus the given extra formula.
func (p *Node) branch(world uint, minus, plus logic.Formula) *Node {
	var (
		child    = NewNode(world)
		formulas = p.formulas.Clone()
	)
	//
	formulas.Remove(minus)
	formulas.Insert(plus)
	//
	child.formulas = formulas
	child.expanded = p.expanded.Clone()
	//
	return child
}
