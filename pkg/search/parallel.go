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
	"context"

	"github.com/google/uuid"
	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/tableau"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Space describes one independent proof search: a goal with its assumptions
// under a fixed modal logic.  Each space is evaluated with its own prover and
// tableau, so spaces never share mutable state.
type Space struct {
	// Name identifies this space in results and logs.
	Name string
	// Logic is the modal logic to search under.
	Logic logic.Logic
	// Goal is the formula to prove.
	Goal logic.Formula
	// Assumptions are taken as true at world 0.
	Assumptions []logic.Formula
	// Depth overrides the default expansion bound when nonzero.
	Depth uint
}

// Result pairs a space with its proof outcome.
type Result struct {
	Space   Space
	Proved  bool
	Tableau *tableau.Tableau
}

// Evaluate runs the search described by this space.
func (s Space) Evaluate() Result {
	depth := s.Depth
	//
	if depth == 0 {
		depth = tableau.DefaultMaxDepth
	}
	//
	proved, tab := tableau.NewProverWithDepth(s.Logic, depth).Prove(s.Goal, s.Assumptions...)
	//
	return Result{Space: s, Proved: proved, Tableau: tab}
}

// Race evaluates the given spaces concurrently on a bounded worker pool,
// returning the first successful result and cancelling the remaining work.
// A panicking worker is logged and treated as "no result from this branch";
// it never aborts the race.  The final result indicates whether any space
// succeeded.
func Race(ctx context.Context, workers uint, spaces []Space) (Result, bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	//
	var (
		g, gctx = errgroup.WithContext(ctx)
		// Buffered so late winners never block after the race is decided.
		hits = make(chan Result, len(spaces))
	)
	//
	g.SetLimit(poolSize(workers))
	//
	for _, s := range spaces {
		g.Go(func() error {
			defer logRecover(s)
			// Skip work raced out already
			select {
			case <-gctx.Done():
				return nil
			default:
			}
			//
			if r := evaluate(s); r.Proved {
				hits <- r
				cancel()
			}
			//
			return nil
		})
	}
	// Workers swallow their own failures, so this never errors.
	_ = g.Wait()
	//
	select {
	case r := <-hits:
		return r, true
	default:
		return Result{}, false
	}
}

// All evaluates every given space concurrently on a bounded worker pool,
// returning one result per space in input order.  Unlike Race, nothing is
// cancelled: every space runs to completion.  A panicking worker is logged
// and yields an unproved result for its space.
func All(ctx context.Context, workers uint, spaces []Space) []Result {
	var (
		g, gctx = errgroup.WithContext(ctx)
		results = make([]Result, len(spaces))
	)
	//
	g.SetLimit(poolSize(workers))
	//
	for i, s := range spaces {
		// Failed spaces report as unproved.
		results[i] = Result{Space: s}
		//
		g.Go(func() error {
			defer logRecover(s)
			//
			select {
			case <-gctx.Done():
				return nil
			default:
			}
			//
			results[i] = evaluate(s)
			//
			return nil
		})
	}
	//
	_ = g.Wait()
	//
	return results
}

func poolSize(workers uint) int {
	if workers == 0 {
		return 1
	}
	//
	return int(workers)
}

func evaluate(s Space) Result {
	id := uuid.NewString()
	//
	log.Debugf("search %s: evaluating %q in %s", id, s.Goal, s.Logic)
	//
	r := s.Evaluate()
	//
	log.Debugf("search %s: proved=%v worlds=%d", id, r.Proved, r.Tableau.Worlds())
	//
	return r
}

// Recover from a panicking search worker, logging and discarding the panic.
func logRecover(s Space) {
	if r := recover(); r != nil {
		log.Warnf("search for %q failed: %v", s.Goal, r)
	}
}
