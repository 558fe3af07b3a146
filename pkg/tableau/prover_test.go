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
	"testing"

	"github.com/modalkit/go-tableau/pkg/logic"
)

// An atom with no assumptions gives a bare negated literal: no rule applies,
// the root saturates and the tableau stays open.
func Test_Prover_01(t *testing.T) {
	success, tab := NewProver(logic.K).Prove("P")
	//
	if success {
		t.Error("bare atom proved")
	}
	//
	if tab.Root().Status() != Saturated {
		t.Errorf("root status %s, expected saturated", tab.Root().Status())
	}
	//
	if tab.Worlds() != 0 {
		t.Errorf("expected no worlds, got %d", tab.Worlds())
	}
}

// An atom assumed outright contradicts its negation immediately.
func Test_Prover_02(t *testing.T) {
	success, tab := NewProver(logic.K).Prove("P", "P")
	//
	if !success {
		t.Error("assumed atom not proved")
	}
	//
	if tab.Worlds() != 0 {
		t.Errorf("expected no worlds, got %d", tab.Worlds())
	}
	//
	if tab.Root().Status() != Closed {
		t.Errorf("root status %s, expected closed", tab.Root().Status())
	}
}

// Reflexivity: under T, □P entails P.
func Test_Prover_03(t *testing.T) {
	success, tab := NewProver(logic.T).Prove("P", "□P")
	//
	if !success {
		t.Error("T failed to prove P from □P")
	}
	//
	if len(tab.Steps()) == 0 {
		t.Error("no justification steps recorded")
	}
}

// K has no reflexivity, so the same problem stays open.
func Test_Prover_04(t *testing.T) {
	if success, _ := NewProver(logic.K).Prove("P", "□P"); success {
		t.Error("K proved P from □P")
	}
}

// D is accepted as a tag but routes to the K rule set.
func Test_Prover_05(t *testing.T) {
	if success, _ := NewProver(logic.D).Prove("P", "□P"); success {
		t.Error("D proved P from □P")
	}
}

// Conjunction splits into the same node (α-rule) and feeds the contradiction
// check.
func Test_Prover_06(t *testing.T) {
	success, _ := NewProver(logic.K).Prove("X", "P∧X")
	//
	if !success {
		t.Error("α expansion failed to close")
	}
}

// Disjunction produces exactly two children, each carrying one disjunct and
// everything inherited except the disjunction itself.
func Test_Prover_07(t *testing.T) {
	success, tab := NewProver(logic.K).Prove("X", "P∨Q")
	//
	if success {
		t.Error("unprovable disjunction proved")
	}
	//
	kids := tab.Root().Children()
	//
	if len(kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(kids))
	}
	//
	for i, disjunct := range []logic.Formula{"P", "Q"} {
		fs := kids[i].Formulas()
		//
		if !contains(fs, disjunct) || !contains(fs, "¬X") {
			t.Errorf("child %d missing inherited formulas: %v", i, fs)
		}
		//
		if contains(fs, "P∨Q") {
			t.Errorf("child %d inherited the disjunction", i)
		}
		//
		if kids[i].World() != 0 {
			t.Errorf("β-rule changed world to %d", kids[i].World())
		}
	}
}

// A disjunction closes only when both branches do.
func Test_Prover_08(t *testing.T) {
	if success, _ := NewProver(logic.K).Prove("X", "X∨X"); !success {
		t.Error("both-branch contradiction not detected")
	}
	//
	if success, _ := NewProver(logic.K).Prove("X", "X∨Q"); success {
		t.Error("half-open disjunction proved")
	}
}

// Double negation is rewritten by stripping exactly two leading negations.
func Test_Prover_09(t *testing.T) {
	success, tab := NewProver(logic.K).Prove("X", "¬¬P")
	//
	if success {
		t.Error("unprovable goal proved")
	}
	//
	if !contains(tab.Root().Formulas(), "P") {
		t.Error("¬¬P did not yield P")
	}
}

// The box rule introduces exactly one accessible world with the inner
// formula.
func Test_Prover_10(t *testing.T) {
	_, tab := NewProver(logic.K).Prove("X", "□P")
	//
	root := tab.Root()
	//
	if tab.Worlds() != 1 || len(root.Accessible()) != 1 {
		t.Fatalf("expected one accessible world, got %d", tab.Worlds())
	}
	//
	if len(root.Children()) != 1 || !contains(root.Children()[0].Formulas(), "P") {
		t.Error("box child missing inner formula")
	}
	//
	if root.Children()[0].World() != 1 {
		t.Errorf("box child at world %d", root.Children()[0].World())
	}
}

// A second box formula is never expanded once the node has an accessible
// world.  This is inherited incompleteness, not a bug.
func Test_Prover_11(t *testing.T) {
	_, tab := NewProver(logic.K).Prove("X", "□P", "□Q")
	//
	if tab.Worlds() != 1 {
		t.Errorf("expected 1 world, got %d", tab.Worlds())
	}
}

// The diamond rule always allocates a fresh world, even when one exists.
func Test_Prover_12(t *testing.T) {
	_, tab := NewProver(logic.K).Prove("X", "◇P", "◇Q")
	//
	if tab.Worlds() != 2 {
		t.Errorf("expected 2 worlds, got %d", tab.Worlds())
	}
	//
	if len(tab.Root().Children()) != 2 {
		t.Errorf("expected 2 children, got %d", len(tab.Root().Children()))
	}
}

// Transitivity: under S4, □P entails □□P.
func Test_Prover_13(t *testing.T) {
	if success, _ := NewProver(logic.S4).Prove("□□P", "□P"); !success {
		t.Error("S4 failed to prove □□P from □P")
	}
	//
	if success, _ := NewProver(logic.T).Prove("□□P", "□P"); success {
		t.Error("T proved □□P from □P")
	}
}

// Euclidean property: under S5, ◇P entails □◇P.
func Test_Prover_14(t *testing.T) {
	if success, _ := NewProver(logic.S5).Prove("□◇P", "◇P"); !success {
		t.Error("S5 failed to prove □◇P from ◇P")
	}
	//
	if success, _ := NewProver(logic.S4).Prove("□◇P", "◇P"); success {
		t.Error("S4 proved □◇P from ◇P")
	}
}

// S4 transitivity expands forever on nested boxes; the depth bound must stop
// it regardless.
func Test_Prover_15(t *testing.T) {
	success, tab := NewProverWithDepth(logic.S4, 5).Prove("X", "□P")
	//
	if success {
		t.Error("depth-bounded search claimed success")
	}
	//
	if tab == nil {
		t.Fatal("no tableau returned")
	}
}

// Malformed input is not an error: it matches no rule and saturates.
func Test_Prover_16(t *testing.T) {
	success, tab := NewProver(logic.K).Prove("P∧", "◇")
	//
	if success {
		t.Error("garbage proved")
	}
	//
	if tab == nil {
		t.Fatal("no tableau returned")
	}
}

// A prover instance is reusable: each call owns a fresh tableau.
func Test_Prover_17(t *testing.T) {
	p := NewProver(logic.T)
	//
	_, tab1 := p.Prove("P", "□P")
	_, tab2 := p.Prove("P", "□P")
	//
	if tab1 == tab2 {
		t.Error("prove calls shared a tableau")
	}
	//
	if tab1.Worlds() != tab2.Worlds() {
		t.Error("world allocation differed across identical calls")
	}
}

// The expansion primitive is pluggable: an expander which refuses every ply
// saturates the root immediately.
func Test_Prover_18(t *testing.T) {
	p := NewProver(logic.T)
	p.SetExpander(func(*Tableau, *Node) bool { return false })
	//
	success, tab := p.Prove("P", "□P")
	//
	if success {
		t.Error("inert expander proved a goal")
	}
	//
	if tab.Root().Status() != Saturated {
		t.Error("inert expander did not saturate")
	}
	// Restoring the default brings the proof back
	p.SetExpander(nil)
	//
	if success, _ := p.Prove("P", "□P"); !success {
		t.Error("default expander not restored")
	}
}

func Test_Prover_19(t *testing.T) {
	// Both branch children close immediately, then the later conjunction ply
	// revisits them.  Each closed node must contribute exactly one closure
	// step to the ledger.
	success, tab := NewProver(logic.K).Prove("B", "B∨B", "Q∧R")
	//
	if !success {
		t.Fatal("failed to prove B from B∨B")
	}
	//
	closures := 0
	//
	for _, s := range tab.Steps() {
		if s.Rule == "⊥" {
			closures++
		}
	}
	//
	if n := len(tab.Root().Children()); n != 2 {
		t.Errorf("expected 2 children, got %d", n)
	} else if closures != n {
		t.Errorf("expected %d closure steps, got %d", n, closures)
	}
}
