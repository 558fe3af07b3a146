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

	"github.com/modalkit/go-tableau/pkg/logic"
	log "github.com/sirupsen/logrus"
)

// DefaultMaxDepth is the recursion bound applied to tableau expansion when no
// explicit bound is given.  The bound guarantees termination even on rule
// cycles which would otherwise expand forever (e.g. nested boxes under S4).
const DefaultMaxDepth = 100

// Expander applies one expansion ply to a node, returning true if any rule
// applied.  The prover's built-in ply is exposed through this type so that
// optimisation layers can wrap it without touching the core algorithm.
type Expander func(*Tableau, *Node) bool

// Prover implements the tableau decision procedure for a fixed modal logic.
// A prover holds no per-proof state: every Prove call constructs its own
// tableau, so a single prover is safe to call from multiple goroutines
// concurrently.
type Prover struct {
	logic    logic.Logic
	closure  ClosureRule
	maxDepth uint
	expander Expander
}

// NewProver constructs a prover for a given modal logic with the default
// depth bound.
func NewProver(l logic.Logic) *Prover {
	return NewProverWithDepth(l, DefaultMaxDepth)
}

// NewProverWithDepth constructs a prover for a given modal logic with an
// explicit depth bound.
func NewProverWithDepth(l logic.Logic, maxDepth uint) *Prover {
	p := &Prover{logic: l, closure: closureRuleOf(l), maxDepth: maxDepth}
	p.expander = p.ApplyPly
	//
	return p
}

// Logic returns the modal logic this prover decides.
func (p *Prover) Logic() logic.Logic {
	return p.logic
}

// SetExpander replaces the expansion primitive used during proof search.
// Passing nil restores the built-in primitive.  Intended for optimisation
// layers which wrap (rather than replace) ApplyPly.
func (p *Prover) SetExpander(e Expander) {
	if e == nil {
		e = p.ApplyPly
	}
	//
	p.expander = e
}

// Prove attempts to establish the goal as a theorem by refuting its negation:
// the negated goal is seeded (together with any assumptions) into a root node
// at world 0, which is then expanded until every branch closes, some branch
// saturates, or the depth bound is hit.  A closed tableau means the goal is a
// theorem; an open one means this procedure could not prove it (which is not
// a countermodel guarantee, since the procedure is deliberately incomplete).
func (p *Prover) Prove(goal logic.Formula, assumptions ...logic.Formula) (bool, *Tableau) {
	seed := append([]logic.Formula{goal.Negate()}, assumptions...)
	//
	t := New(p.logic, NewNode(0, seed...))
	//
	log.Debugf("proving %s in %s with %d assumption(s)", goal, p.logic, len(assumptions))
	//
	p.expand(t, t.Root(), p.maxDepth)
	//
	success := t.IsClosed()
	//
	log.Debugf("tableau for %s: closed=%v, worlds=%d, steps=%d", goal, success, t.Worlds(), len(t.Steps()))
	//
	return success, t
}

// ApplyPly applies at most one rule to a node: propositional rules are tried
// first and, only if none applied, modal rules.  This is the pluggable
// expansion primitive.
func (p *Prover) ApplyPly(t *Tableau, n *Node) bool {
	if p.applyPropositional(t, n) {
		return true
	}
	//
	return p.applyModal(t, n)
}

// Recursively expand a node until it closes, saturates, or the depth bound
// runs out.  Exhausting the bound leaves the node open, which conservatively
// reports "not proved".  After a rule applies, any children are expanded
// first and then the node itself is revisited, so that formulas added to the
// same node (conjuncts, closure axioms) feed back into the contradiction
// check.
func (p *Prover) expand(t *Tableau, n *Node, depth uint) {
	if depth == 0 {
		return
	}
	// Closed is terminal.  Revisit plies of an ancestor must not re-record a
	// closure for a node that already closed.
	if n.Status() == Closed {
		return
	}
	// Contradiction closes the node before any further rule application.
	if n.IsContradictory() {
		n.Close()
		t.record("⊥", nil, "⊥", fmt.Sprintf("world %d holds a contradictory pair", n.world))
		//
		return
	}
	// One rule category per ply.
	if !p.expander(t, n) {
		n.saturate()
		return
	}
	//
	for _, c := range n.Children() {
		p.expand(t, c, depth-1)
	}
	//
	p.expand(t, n, depth-1)
}

// Try the propositional rules against every formula not yet consumed at this
// node; first match wins.
func (p *Prover) applyPropositional(t *Tableau, n *Node) bool {
	for _, f := range n.Formulas() {
		if n.isExpanded(f) {
			continue
		}
		//
		switch {
		case f.HasConjunction():
			// α-rule: both conjuncts join the same node.
			lhs, rhs, _ := f.SplitConjunction()
			n.markExpanded(f)
			n.AddFormula(lhs)
			n.AddFormula(rhs)
			t.record("α", []string{string(f)}, string(lhs)+", "+string(rhs), "conjunction")
			//
			return true
		case f.HasDisjunction():
			// β-rule: the branch splits in two, one disjunct each.  Children
			// inherit everything except the disjunction itself, at the same
			// world.
			lhs, rhs, _ := f.SplitDisjunction()
			n.markExpanded(f)
			n.addChild(n.branch(n.world, f, lhs))
			n.addChild(n.branch(n.world, f, rhs))
			t.record("β", []string{string(f)}, string(lhs)+" | "+string(rhs), "disjunction branches")
			//
			return true
		case f.IsDoubleNegation():
			n.markExpanded(f)
			stripped := f.StripDoubleNegation()
			n.AddFormula(stripped)
			t.record("¬¬", []string{string(f)}, string(stripped), "double negation")
			//
			return true
		}
	}
	//
	return false
}

// Try the modal rules against every formula not yet consumed at this node.
// Logic-specific closure axioms fire only when no box or diamond rule did.
func (p *Prover) applyModal(t *Tableau, n *Node) bool {
	for _, f := range n.Formulas() {
		if n.isExpanded(f) {
			continue
		}
		//
		switch {
		case f.IsBox():
			// Only ever introduce one accessible world per node; closure
			// axioms handle re-application across worlds instead of reusing
			// an existing world per formula.
			if n.hasAccessible() {
				continue
			}
			//
			n.markExpanded(f)
			world := t.NextWorld()
			n.addAccessible(world)
			n.addChild(NewNode(world, f.Inner()))
			t.record("□", []string{string(f)}, string(f.Inner()), "necessity introduces accessible world")
			//
			return true
		case f.IsDiamond():
			// Always a fresh world, unlike the box rule.
			n.markExpanded(f)
			world := t.NextWorld()
			n.addAccessible(world)
			n.addChild(NewNode(world, f.Inner()))
			t.record("◇", []string{string(f)}, string(f.Inner()), "possibility introduces accessible world")
			//
			return true
		}
	}
	//
	return p.closure.Apply(t, n)
}
