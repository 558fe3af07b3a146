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
package proof

import (
	"fmt"
	"strings"
)

// Step records a single justification step made by a prover, such as one rule
// application or the derivation of a resolvent.  All fields are plain strings
// so that steps can be rendered or serialised without knowledge of the engine
// which produced them.
type Step struct {
	// Rule names the rule which was applied.
	Rule string `json:"rule"`
	// Premises are the formulas (or clauses) the rule consumed.
	Premises []string `json:"premises,omitempty"`
	// Conclusion is the formula (or clause) the rule produced.
	Conclusion string `json:"conclusion"`
	// Justification is a human-readable account of why the step is sound.
	Justification string `json:"justification,omitempty"`
}

// New constructs a proof step.
func New(rule string, premises []string, conclusion string, justification string) Step {
	return Step{
		Rule:          rule,
		Premises:      premises,
		Conclusion:    conclusion,
		Justification: justification,
	}
}

func (s Step) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("[%s] ", s.Rule))
	//
	if len(s.Premises) > 0 {
		builder.WriteString(strings.Join(s.Premises, ", "))
		builder.WriteString(" ")
	}
	//
	builder.WriteString(fmt.Sprintf("⊢ %s", s.Conclusion))
	//
	if s.Justification != "" {
		builder.WriteString(fmt.Sprintf(" (%s)", s.Justification))
	}
	//
	return builder.String()
}
