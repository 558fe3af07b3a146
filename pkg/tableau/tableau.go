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
	"strings"

	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/proof"
)

// Tableau is the proof tree constructed whilst refuting the negation of a
// goal formula.  It owns exactly one root node, the target modal logic, a
// per-instance world counter and the sequence of justification steps recorded
// during expansion.  A tableau is created once per prove call and returned to
// the caller as its result; no further mutation is expected after that.
type Tableau struct {
	root *Node
	// Immutable for this tableau's lifetime.
	logic logic.Logic
	// Number of worlds allocated beyond the root (which is world 0).
	worlds uint
	// Append-only justification records.
	steps []proof.Step
}

// New constructs a tableau over a given root node for a given modal logic.
func New(l logic.Logic, root *Node) *Tableau {
	return &Tableau{root: root, logic: l}
}

// Root returns the root node of this tableau.
func (p *Tableau) Root() *Node {
	return p.root
}

// Logic returns the modal logic this tableau was constructed under.
func (p *Tableau) Logic() logic.Logic {
	return p.logic
}

// Worlds returns the number of worlds allocated during expansion, excluding
// the root world 0.
func (p *Tableau) Worlds() uint {
	return p.worlds
}

// Steps returns the justification steps recorded during expansion, in
// application order.
func (p *Tableau) Steps() []proof.Step {
	return p.steps
}

// NextWorld allocates a fresh world identifier.  Identifiers are strictly
// increasing and unique across the whole tableau, starting at 1 (world 0 is
// reserved for the root).
func (p *Tableau) NextWorld() uint {
	p.worlds++
	return p.worlds
}

// IsClosed checks whether the whole tree is closed.  A node counts as closed
// if its own status is Closed, or it has at least one child and all of its
// children are closed.  An unexpanded open or saturated leaf keeps its branch
// (and hence the tableau) open.
func (p *Tableau) IsClosed() bool {
	return closed(p.root)
}

func (p *Tableau) String() string {
	var builder strings.Builder
	//
	render(&builder, p.root, 0)
	//
	return builder.String()
}

// Record a justification step.
func (p *Tableau) record(rule string, premises []string, conclusion string, justification string) {
	p.steps = append(p.steps, proof.New(rule, premises, conclusion, justification))
}

// Depth-first closure check, short-circuiting on the first open branch.
func closed(n *Node) bool {
	if n.status == Closed {
		return true
	}
	//
	if len(n.children) == 0 {
		return false
	}
	//
	for _, c := range n.children {
		if !closed(c) {
			return false
		}
	}
	//
	return true
}

func render(builder *strings.Builder, n *Node, depth int) {
	builder.WriteString(strings.Repeat("  ", depth))
	builder.WriteString(n.String())
	builder.WriteString("\n")
	//
	for _, c := range n.children {
		render(builder, c, depth+1)
	}
}
