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
package logic

import "strings"

// Operator tokens of the formula syntax.  Formulas are annotated strings over
// these tokens plus bare atom identifiers, rather than a structured syntax
// tree.  All connective handling works by prefix stripping and
// first-occurrence substring splitting, which keeps the representation trivial
// at the cost of not being parenthesis aware.
const (
	// Negation is the (prefix) negation operator.
	Negation = "¬"
	// Conjunction is the (infix) conjunction operator.
	Conjunction = "∧"
	// Disjunction is the (infix) disjunction operator.
	Disjunction = "∨"
	// Box is the (prefix) necessity operator.
	Box = "□"
	// Diamond is the (prefix) possibility operator.
	Diamond = "◇"
)

// Formula is a propositional modal formula in textual form.  The zero value is
// the empty formula, which matches no rule anywhere.  Formulas are never
// validated: a malformed formula simply fails to match any rule.
type Formula string

// Formulas converts a slice of plain strings into formulas.
func Formulas(items []string) []Formula {
	fs := make([]Formula, len(items))
	//
	for i, s := range items {
		fs[i] = Formula(s)
	}
	//
	return fs
}

// Negate returns the syntactic negation of this formula: if the formula
// carries a leading negation, exactly one is stripped; otherwise one is
// prepended.  Negate is an involution on formulas which are not already
// double-negated.
func (f Formula) Negate() Formula {
	if f.IsNegation() {
		return f[len(Negation):]
	}
	//
	return Formula(Negation) + f
}

// IsNegation checks whether this formula carries a leading negation.
func (f Formula) IsNegation() bool {
	return strings.HasPrefix(string(f), Negation)
}

// IsDoubleNegation checks whether this formula carries exactly two (or more)
// leading negations.
func (f Formula) IsDoubleNegation() bool {
	return strings.HasPrefix(string(f), Negation+Negation)
}

// IsBox checks whether this formula carries a leading necessity operator.
func (f Formula) IsBox() bool {
	return strings.HasPrefix(string(f), Box)
}

// IsDiamond checks whether this formula carries a leading possibility
// operator.
func (f Formula) IsDiamond() bool {
	return strings.HasPrefix(string(f), Diamond)
}

// Inner strips one leading unary operator (negation, box or diamond) from this
// formula.  Formulas without a leading unary operator are returned unchanged.
func (f Formula) Inner() Formula {
	switch {
	case f.IsNegation():
		return f[len(Negation):]
	case f.IsBox():
		return f[len(Box):]
	case f.IsDiamond():
		return f[len(Diamond):]
	}
	//
	return f
}

// StripDoubleNegation removes exactly two leading negations from this formula.
// The caller is expected to have checked IsDoubleNegation first.
func (f Formula) StripDoubleNegation() Formula {
	return f[2*len(Negation):]
}

// HasConjunction checks whether this formula contains a conjunction operator
// anywhere.
func (f Formula) HasConjunction() bool {
	return strings.Contains(string(f), Conjunction)
}

// HasDisjunction checks whether this formula contains a disjunction operator
// anywhere.
func (f Formula) HasDisjunction() bool {
	return strings.Contains(string(f), Disjunction)
}

// SplitConjunction splits this formula on the first occurrence of the
// conjunction operator, returning both halves trimmed of surrounding
// whitespace.  The final result indicates whether a conjunction was present.
func (f Formula) SplitConjunction() (Formula, Formula, bool) {
	return f.splitFirst(Conjunction)
}

// SplitDisjunction splits this formula on the first occurrence of the
// disjunction operator, returning both halves trimmed of surrounding
// whitespace.  The final result indicates whether a disjunction was present.
func (f Formula) SplitDisjunction() (Formula, Formula, bool) {
	return f.splitFirst(Disjunction)
}

// Cmp implementation for the set.Comparable interface, allowing formulas to be
// held in sorted sets.
func (f Formula) Cmp(o Formula) int {
	return strings.Compare(string(f), string(o))
}

func (f Formula) String() string {
	return string(f)
}

// Split on the first occurrence of a given (infix) operator.  Observe this is
// not parenthesis aware, matching the string-level contract of the formula
// representation.
func (f Formula) splitFirst(op string) (Formula, Formula, bool) {
	i := strings.Index(string(f), op)
	//
	if i < 0 {
		return "", "", false
	}
	//
	lhs := Formula(strings.TrimSpace(string(f)[:i]))
	rhs := Formula(strings.TrimSpace(string(f)[i+len(op):]))
	//
	return lhs, rhs, true
}
