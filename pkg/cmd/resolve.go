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
	"os"

	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/resolution"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] goal",
	Short: "prove a propositional formula by binary resolution.",
	Long: `Attempt to prove a propositional goal, optionally under assumptions, by
	 deriving the empty clause from the clausified negation of the goal.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		assumptions := logic.Formulas(GetStringArray(cmd, "assume"))
		goal := logic.Formula(args[0])
		//
		var prover resolution.Prover
		proved, steps := prover.Prove(goal, assumptions...)
		//
		printVerdict(string(goal), proved)
		//
		if GetFlag(cmd, "steps") {
			printSteps(steps)
		}
		//
		if !proved {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringArrayP("assume", "a", nil, "assumption formula (may be repeated)")
	resolveCmd.Flags().Bool("steps", false, "print the recorded derivation steps")
}
