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

import (
	"fmt"
	"strings"
)

// Logic identifies a normal modal logic supported by the tableau engine.  The
// logics form the usual inclusion hierarchy: K below T below S4 below S5, with
// D accepted as a tag but sharing the K rule set.
type Logic uint8

const (
	// K is the minimal normal modal logic (no frame conditions).
	K Logic = iota
	// T extends K with reflexivity (□P entails P).
	T
	// S4 extends T with transitivity (□P entails □□P).
	S4
	// S5 extends S4 with the Euclidean property (◇P entails □◇P).
	S5
	// D is accepted as a logic tag, but deliberately routes to the K rule
	// set during dispatch.  Downstream callers depend on this aliasing.
	D
)

func (l Logic) String() string {
	switch l {
	case K:
		return "K"
	case T:
		return "T"
	case S4:
		return "S4"
	case S5:
		return "S5"
	case D:
		return "D"
	}
	//
	return fmt.Sprintf("Logic(%d)", uint8(l))
}

// ParseLogic maps a textual logic tag onto its Logic value.  Unknown tags are
// rejected loudly with an UnsupportedLogicError; this is the one place where
// logic selection fails rather than falling back.
func ParseLogic(tag string) (Logic, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "K":
		return K, nil
	case "T":
		return T, nil
	case "S4":
		return S4, nil
	case "S5":
		return S5, nil
	case "D":
		return D, nil
	}
	//
	return K, &UnsupportedLogicError{Tag: tag}
}

// UnsupportedLogicError signals that a logic tag does not name any supported
// modal logic.
type UnsupportedLogicError struct {
	// Tag is the offending logic tag.
	Tag string
}

func (e *UnsupportedLogicError) Error() string {
	return fmt.Sprintf("unsupported modal logic %q (supported: K, T, S4, S5, D)", e.Tag)
}
