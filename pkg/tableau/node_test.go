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

func Test_Node_01(t *testing.T) {
	n := NewNode(0)
	//
	if !n.AddFormula("P") {
		t.Error("fresh formula reported as duplicate")
	}
	//
	if n.AddFormula("P") {
		t.Error("duplicate formula reported as fresh")
	}
	//
	if len(n.Formulas()) != 1 {
		t.Errorf("expected 1 formula, got %d", len(n.Formulas()))
	}
}

func Test_Node_02(t *testing.T) {
	// Empty node is never contradictory
	if NewNode(0).IsContradictory() {
		t.Error("empty node contradictory")
	}
	// A lone atom is not contradictory
	if NewNode(0, "P").IsContradictory() {
		t.Error("node {P} contradictory")
	}
}

func Test_Node_03(t *testing.T) {
	// Complementary pair, either insertion order
	if !NewNode(0, "P", "¬P").IsContradictory() {
		t.Error("node {P, ¬P} not contradictory")
	}
	//
	if !NewNode(0, "¬P", "P").IsContradictory() {
		t.Error("node {¬P, P} not contradictory")
	}
	// Different atoms are not complementary
	if NewNode(0, "P", "¬Q").IsContradictory() {
		t.Error("node {P, ¬Q} contradictory")
	}
}

func Test_Node_04(t *testing.T) {
	// The contradiction test is syntactic: ¬¬P complements ¬P by prefix
	// stripping, not by semantic evaluation.
	if !NewNode(0, "¬¬P", "¬P").IsContradictory() {
		t.Error("node {¬¬P, ¬P} not contradictory")
	}
}

func Test_Node_05(t *testing.T) {
	n := NewNode(0, "P")
	//
	if n.Status() != Open {
		t.Error("fresh node not open")
	}
	//
	n.Close()
	n.Close()
	// Close is idempotent
	if n.Status() != Closed {
		t.Error("closed node not closed")
	}
}

func Test_Node_06(t *testing.T) {
	var (
		parent = NewNode(0, "P")
		child  = NewNode(1, "Q")
	)
	//
	parent.addChild(child)
	//
	if child.Parent() != parent {
		t.Error("child parent back reference not wired")
	}
	//
	if len(parent.Children()) != 1 || parent.Children()[0] != child {
		t.Error("parent children not wired")
	}
}

func Test_Node_07(t *testing.T) {
	n := NewNode(0, "¬X", "P∨Q", "A")
	//
	n.markExpanded("P∨Q")
	//
	child := n.branch(0, "P∨Q", "P")
	// Child inherits everything except the disjunction, plus the disjunct
	fs := child.Formulas()
	//
	if len(fs) != 3 {
		t.Fatalf("expected 3 formulas, got %v", fs)
	}
	//
	for _, f := range []logic.Formula{"¬X", "P", "A"} {
		if !contains(fs, f) {
			t.Errorf("child missing %s", f)
		}
	}
	//
	if contains(fs, "P∨Q") {
		t.Error("child inherited the disjunction itself")
	}
	// The expanded set is copied, not shared
	if !child.isExpanded("P∨Q") {
		t.Error("child missing copied expanded set")
	}
	//
	child.markExpanded("A")
	//
	if n.isExpanded("A") {
		t.Error("expanded set shared between parent and child")
	}
}

func Test_Node_08(t *testing.T) {
	n := NewNode(0, "P", "Q", "R")
	// Snapshot taken before later additions
	fs := n.Formulas()
	// Insertions which sort before the snapshot's elements
	n.AddFormula("A")
	n.AddFormula("B")
	//
	if len(fs) != 3 || fs[0] != "P" || fs[1] != "Q" || fs[2] != "R" {
		t.Errorf("snapshot disturbed by later additions: %v", fs)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func contains(fs []logic.Formula, f logic.Formula) bool {
	for _, g := range fs {
		if g == f {
			return true
		}
	}
	//
	return false
}
