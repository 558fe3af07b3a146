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
package resolution

import (
	"strings"

	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/util/collection/set"
)

// Clause is a disjunction of literals held as a sorted set, meaning identical
// literals deduplicate automatically and identical clauses compare equal.  A
// literal is an atom or its (single) syntactic negation; literals reuse the
// formula representation.  The empty clause signals contradiction.
type Clause struct {
	literals set.Sorted[logic.Formula]
}

// NewClause constructs a clause over zero or more literals.
func NewClause(literals ...logic.Formula) Clause {
	return Clause{literals: *set.New(literals...)}
}

// Literals returns the literals of this clause in deterministic (sorted)
// order.
func (c Clause) Literals() []logic.Formula {
	return c.literals.ToArray()
}

// IsEmpty checks whether this is the empty clause.
func (c Clause) IsEmpty() bool {
	return len(c.literals) == 0
}

// Contains checks whether a given literal occurs in this clause.
func (c Clause) Contains(l logic.Formula) bool {
	return c.literals.Contains(l)
}

// Remove returns a copy of this clause without a given literal.
func (c Clause) Remove(l logic.Formula) Clause {
	nliterals := c.literals.Clone()
	nliterals.Remove(l)
	//
	return Clause{nliterals}
}

// Union returns the clause holding every literal of this clause and another.
func (c Clause) Union(o Clause) Clause {
	nliterals := c.literals.Clone()
	nliterals.InsertAll(o.literals.ToArray()...)
	//
	return Clause{nliterals}
}

// Cmp implementation for the set.Comparable interface, allowing clause sets
// to deduplicate identical clauses.
func (c Clause) Cmp(o Clause) int {
	return set.Compare(c.literals.ToArray(), o.literals.ToArray())
}

func (c Clause) String() string {
	if c.IsEmpty() {
		return "⊥"
	}
	//
	var builder strings.Builder
	//
	for i, l := range c.literals.ToArray() {
		if i != 0 {
			builder.WriteString(" " + logic.Disjunction + " ")
		}
		//
		builder.WriteString(string(l))
	}
	//
	return builder.String()
}

// Clausify converts a formula into clausal form: the formula is split into
// conjuncts on every conjunction operator, and each conjunct is parsed as one
// clause.  A formula without conjunctions is a single clause.  Observe the
// split is a plain string split, not parenthesis aware; this is a known
// limitation of the string-level formula contract and affects which formulas
// are provable.
func Clausify(f logic.Formula) []Clause {
	var (
		conjuncts = strings.Split(string(f), logic.Conjunction)
		clauses   = make([]Clause, len(conjuncts))
	)
	//
	for i, c := range conjuncts {
		clauses[i] = NewClause(parseLiterals(c)...)
	}
	//
	return clauses
}

// Split a clause string into its literals, in left-to-right order, each
// trimmed of surrounding whitespace.  A string without disjunctions is a
// single literal.
func parseLiterals(s string) []logic.Formula {
	var (
		parts    = strings.Split(s, logic.Disjunction)
		literals = make([]logic.Formula, len(parts))
	)
	//
	for i, p := range parts {
		literals[i] = logic.Formula(strings.TrimSpace(p))
	}
	//
	return literals
}
