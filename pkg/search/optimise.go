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
package search

import (
	"strings"

	"github.com/modalkit/go-tableau/pkg/tableau"
)

// TreeNode is the generic labelled-tree abstraction the optimisation
// utilities operate over.  They consume proof trees through this interface
// only, and never mutate the underlying tableau.
type TreeNode interface {
	// Label returns a canonical description of this node.
	Label() string
	// Children returns this node's children in order.
	Children() []TreeNode
}

// Tree is a plain labelled tree, used as the output of optimisation passes.
type Tree struct {
	Text string
	Kids []*Tree
}

// Label implementation for the TreeNode interface.
func (p *Tree) Label() string {
	return p.Text
}

// Children implementation for the TreeNode interface.
func (p *Tree) Children() []TreeNode {
	kids := make([]TreeNode, len(p.Kids))
	//
	for i, k := range p.Kids {
		kids[i] = k
	}
	//
	return kids
}

// TableauTree adapts a tableau into the generic tree abstraction.
func TableauTree(t *tableau.Tableau) TreeNode {
	return tableauNode{t.Root()}
}

// Size counts the nodes of a tree.
func Size(n TreeNode) uint {
	count := uint(1)
	//
	for _, c := range n.Children() {
		count += Size(c)
	}
	//
	return count
}

// Depth computes the height of a tree (a leaf has depth 1).
func Depth(n TreeNode) uint {
	depth := uint(0)
	//
	for _, c := range n.Children() {
		depth = max(depth, Depth(c))
	}
	//
	return depth + 1
}

// Snapshot copies a tree into a plain labelled tree, detaching it from
// whatever structure backs the interface.
func Snapshot(n TreeNode) *Tree {
	var kids []*Tree
	//
	for _, c := range n.Children() {
		kids = append(kids, Snapshot(c))
	}
	//
	return &Tree{Text: n.Label(), Kids: kids}
}

// Prune rebuilds a tree keeping only subtrees whose root satisfies the given
// predicate.  The root itself is always kept.
func Prune(n TreeNode, keep func(TreeNode) bool) *Tree {
	var kids []*Tree
	//
	for _, c := range n.Children() {
		if keep(c) {
			kids = append(kids, Prune(c, keep))
		}
	}
	//
	return &Tree{Text: n.Label(), Kids: kids}
}

// Dedup rebuilds a tree with duplicate sibling subtrees collapsed: two
// siblings are duplicates when their entire subtrees render identically.
func Dedup(n TreeNode) *Tree {
	var (
		kids []*Tree
		seen = make(map[string]bool)
	)
	//
	for _, c := range n.Children() {
		ith := Dedup(c)
		key := ith.fingerprint()
		//
		if !seen[key] {
			seen[key] = true
			kids = append(kids, ith)
		}
	}
	//
	return &Tree{Text: n.Label(), Kids: kids}
}

// RedundancyFilter wraps an expansion primitive with memoisation over node
// labels: once a node with a given formula set has saturated, any later node
// carrying the same formulas is treated as saturated without re-running the
// rules.  The wrapped primitive is otherwise untouched, so closure behaviour
// is preserved.
func RedundancyFilter(next tableau.Expander) tableau.Expander {
	saturated := make(map[string]bool)
	//
	return func(t *tableau.Tableau, n *tableau.Node) bool {
		key := formulaKey(n)
		//
		if saturated[key] {
			return false
		}
		//
		applied := next(t, n)
		//
		if !applied {
			saturated[key] = true
		}
		//
		return applied
	}
}

// ============================================================================
// Helpers
// ============================================================================

type tableauNode struct {
	n *tableau.Node
}

func (p tableauNode) Label() string {
	return p.n.String()
}

func (p tableauNode) Children() []TreeNode {
	var kids []TreeNode
	//
	for _, c := range p.n.Children() {
		kids = append(kids, tableauNode{c})
	}
	//
	return kids
}

func (p *Tree) fingerprint() string {
	var builder strings.Builder
	//
	fingerprint(&builder, p)
	//
	return builder.String()
}

func fingerprint(builder *strings.Builder, t *Tree) {
	builder.WriteString(t.Text)
	builder.WriteString("(")
	//
	for _, k := range t.Kids {
		fingerprint(builder, k)
	}
	//
	builder.WriteString(")")
}

func formulaKey(n *tableau.Node) string {
	var builder strings.Builder
	//
	for i, f := range n.Formulas() {
		if i != 0 {
			builder.WriteString(";")
		}
		//
		builder.WriteString(string(f))
	}
	//
	return builder.String()
}
