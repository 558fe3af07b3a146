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
	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/proof"
	"github.com/modalkit/go-tableau/pkg/util/collection/set"
	log "github.com/sirupsen/logrus"
)

// MaxRounds bounds the number of saturation rounds performed before giving
// up.  Reaching the bound (or a fixpoint without contradiction) is a normal
// termination path reported as "not proved", never an error.
const MaxRounds = 1000

// Prover implements refutation by binary resolution over propositional
// clause sets.  The clause set is owned by one prover instance and reset at
// the start of every Prove call, so a prover is reusable but a single
// instance must not be shared between concurrent calls.
type Prover struct {
	clauses set.Sorted[Clause]
}

// NewProver constructs a resolution prover.
func NewProver() *Prover {
	return &Prover{}
}

// Clauses returns the clause set as of the last Prove call, in deterministic
// order.
func (p *Prover) Clauses() []Clause {
	return p.clauses.ToArray()
}

// Prove attempts to derive the empty clause from the negated goal together
// with the assumptions.  Success means the goal follows from the assumptions.
// Saturation without the empty clause, or exhausting the round bound, is
// reported as failure.
func (p *Prover) Prove(goal logic.Formula, assumptions ...logic.Formula) (bool, []proof.Step) {
	var steps []proof.Step
	// Reset clause state
	p.clauses = nil
	p.clauses.InsertAll(Clausify(goal.Negate())...)
	//
	for _, a := range assumptions {
		p.clauses.InsertAll(Clausify(a)...)
	}
	//
	log.Debugf("resolving %s against %d assumption(s), %d initial clause(s)", goal, len(assumptions), len(p.clauses))
	//
	for round := 0; round < MaxRounds; round++ {
		resolvents, rsteps := p.step()
		steps = append(steps, rsteps...)
		// Check for contradiction amongst the new resolvents
		for _, r := range resolvents {
			if r.IsEmpty() {
				steps = append(steps, proof.New("resolution", nil, "⊥", "empty clause derived"))
				return true, steps
			}
		}
		// Merge resolvents, stopping at a fixpoint
		added := false
		//
		for _, r := range resolvents {
			added = p.clauses.Insert(r) || added
		}
		//
		if !added {
			break
		}
	}
	//
	return false, steps
}

// Compute all pairwise resolvents of the current clause set, recording a
// justification step for each resolvent not already known.  A resolvent
// reachable from several clause pairs is collected (and recorded) once per
// round.
func (p *Prover) step() ([]Clause, []proof.Step) {
	var (
		clauses    = p.clauses.ToArray()
		resolvents set.Sorted[Clause]
		steps      []proof.Step
	)
	//
	for i := range clauses {
		for j := i + 1; j < len(clauses); j++ {
			for _, r := range Resolve(clauses[i], clauses[j]) {
				if !resolvents.Insert(r) {
					continue
				}
				//
				if !p.clauses.Contains(r) {
					premises := []string{clauses[i].String(), clauses[j].String()}
					steps = append(steps, proof.New("resolve", premises, r.String(), ""))
				}
			}
		}
	}
	//
	return resolvents.ToArray(), steps
}

// Resolve two clauses on every complementary literal pair they share,
// returning all resolvents.  A pair sharing multiple complementary literals
// yields multiple resolvents.  An empty resolvent is the empty clause,
// signalling contradiction.
func Resolve(c1, c2 Clause) []Clause {
	var resolvents []Clause
	//
	for _, l := range c1.Literals() {
		if c2.Contains(l.Negate()) {
			r := c1.Remove(l).Union(c2.Remove(l.Negate()))
			resolvents = append(resolvents, r)
		}
	}
	//
	return resolvents
}
