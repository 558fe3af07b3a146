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
package cmd

import (
	"fmt"
	"os"

	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/store"
	"github.com/modalkit/go-tableau/pkg/tableau"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var proveCmd = &cobra.Command{
	Use:   "prove [flags] goal",
	Short: "prove a modal formula by the tableau method.",
	Long: `Attempt to prove a goal formula, optionally under assumptions, by refuting
	 its negation in a semantic tableau for the chosen modal logic.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		l := parseLogicOrExit(GetString(cmd, "logic"))
		depth := GetUint(cmd, "depth")
		assumptions := logic.Formulas(GetStringArray(cmd, "assume"))
		goal := logic.Formula(args[0])
		dir := GetString(cmd, "store")
		// Consult the cache first, when one is configured.
		if dir != "" {
			if rec, ok := lookupRecord(dir, l, goal, assumptions); ok {
				log.Debugf("cache hit for %s goal %s", l, goal)
				printCachedVerdict(cmd, goal, rec)
				//
				return
			}
		}
		//
		prover := tableau.NewProverWithDepth(l, depth)
		proved, t := prover.Prove(goal, assumptions...)
		//
		if dir != "" {
			storeRecord(dir, l, goal, assumptions, proved, t)
		}
		//
		printVerdict(string(goal), proved)
		//
		if GetFlag(cmd, "steps") {
			printSteps(t.Steps())
		}
		//
		if GetFlag(cmd, "tree") {
			fmt.Print(t.String())
		}
		//
		if !proved {
			os.Exit(1)
		}
	},
}

// Look up a previously stored proof result for this exact request.
func lookupRecord(dir string, l logic.Logic, goal logic.Formula, assumptions []logic.Formula) (store.Record, bool) {
	db, err := store.OpenBadger(dir)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	defer db.Close()
	//
	blob, ok, err := db.Get(store.Key(l, goal, assumptions))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	} else if !ok {
		return store.Record{}, false
	}
	//
	rec, err := store.UnmarshalRecord(blob)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return rec, true
}

// Write a freshly computed proof result through to the store.
func storeRecord(dir string, l logic.Logic, goal logic.Formula, assumptions []logic.Formula,
	proved bool, t *tableau.Tableau) {
	db, err := store.OpenBadger(dir)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	defer db.Close()
	//
	strs := make([]string, len(assumptions))
	for i, a := range assumptions {
		strs[i] = string(a)
	}
	//
	rec := store.Record{
		Logic:       l.String(),
		Goal:        string(goal),
		Assumptions: strs,
		Proved:      proved,
		Worlds:      t.Worlds(),
		Steps:       t.Steps(),
	}
	//
	blob, err := rec.Marshal()
	if err == nil {
		err = db.Put(store.Key(l, goal, assumptions), blob)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

// Report a cached verdict, honouring the same flags as a fresh proof.
func printCachedVerdict(cmd *cobra.Command, goal logic.Formula, rec store.Record) {
	printVerdict(string(goal), rec.Proved)
	//
	if GetFlag(cmd, "steps") {
		printSteps(rec.Steps)
	}
	//
	if !rec.Proved {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.Flags().StringP("logic", "l", "K", "modal logic to prove in (K, T, S4, S5, D)")
	proveCmd.Flags().UintP("depth", "d", tableau.DefaultMaxDepth, "maximum expansion depth")
	proveCmd.Flags().StringArrayP("assume", "a", nil, "assumption formula (may be repeated)")
	proveCmd.Flags().String("store", "", "directory of a proof cache to read and write through")
	proveCmd.Flags().Bool("steps", false, "print the recorded derivation steps")
	proveCmd.Flags().Bool("tree", false, "print the final tableau tree")
}
