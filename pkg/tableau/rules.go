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
	"github.com/modalkit/go-tableau/pkg/logic"
)

// ClosureRule applies a logic-specific closure axiom to a node, returning
// true if it added anything.  Closure rules fire only when no box or diamond
// rule fired in the same ply, and add at most one formula per application.
// Implementations compose following the axiom inclusion hierarchy: S5
// delegates to S4, which delegates to T.
type ClosureRule interface {
	Apply(t *Tableau, n *Node) bool
}

// Select the closure rule for a given modal logic.  Note that D deliberately
// shares the K rule set here; rejecting genuinely unsupported tags is the
// factory's job, not the dispatcher's.
func closureRuleOf(l logic.Logic) ClosureRule {
	switch l {
	case logic.T:
		return tClosure{}
	case logic.S4:
		return s4Closure{}
	case logic.S5:
		return s5Closure{}
	}
	//
	return kClosure{}
}

// ============================================================================
// K (and D)
// ============================================================================

// K has no frame conditions, hence no closure axiom.
type kClosure struct{}

func (r kClosure) Apply(t *Tableau, n *Node) bool {
	return false
}

// ============================================================================
// T
// ============================================================================

// Reflexivity: □P entails P at the same world.
type tClosure struct{}

func (r tClosure) Apply(t *Tableau, n *Node) bool {
	for _, f := range n.Formulas() {
		if !f.IsBox() {
			continue
		}
		//
		if inner := f.Inner(); n.AddFormula(inner) {
			t.record("T", []string{string(f)}, string(inner), "reflexivity")
			// One application per ply
			return true
		}
	}
	//
	return false
}

// ============================================================================
// S4
// ============================================================================

// Transitivity: □P entails □□P at the same world.  T applies first.
type s4Closure struct {
	t tClosure
}

func (r s4Closure) Apply(t *Tableau, n *Node) bool {
	if r.t.Apply(t, n) {
		return true
	}
	//
	for _, f := range n.Formulas() {
		if !f.IsBox() {
			continue
		}
		//
		if boxed := logic.Formula(logic.Box) + f; n.AddFormula(boxed) {
			t.record("4", []string{string(f)}, string(boxed), "transitivity")
			return true
		}
	}
	//
	return false
}

// ============================================================================
// S5
// ============================================================================

// Euclidean property: ◇P entails □◇P at the same world.  S4 (and hence T)
// applies first.
type s5Closure struct {
	s4 s4Closure
}

func (r s5Closure) Apply(t *Tableau, n *Node) bool {
	if r.s4.Apply(t, n) {
		return true
	}
	//
	for _, f := range n.Formulas() {
		if !f.IsDiamond() {
			continue
		}
		//
		if boxed := logic.Formula(logic.Box) + f; n.AddFormula(boxed) {
			t.record("5", []string{string(f)}, string(boxed), "euclidean property")
			return true
		}
	}
	//
	return false
}
