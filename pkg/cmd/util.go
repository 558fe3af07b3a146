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

	"github.com/fatih/color"
	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/proof"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or exit if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array flag, or exit if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a logic name, or exit with a diagnostic when it is not one we support.
func parseLogicOrExit(name string) logic.Logic {
	l, err := logic.ParseLogic(name)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return l
}

// Print a PROVED / NOT PROVED verdict for a named problem, colourised when
// stdout is a terminal.
func printVerdict(name string, proved bool) {
	var verdict string
	//
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	//
	if proved {
		verdict = color.GreenString("PROVED")
	} else {
		verdict = color.RedString("NOT PROVED")
	}
	//
	if name != "" {
		fmt.Printf("%s: %s\n", name, verdict)
	} else {
		fmt.Println(verdict)
	}
}

// Print the recorded derivation steps, one per line.
func printSteps(steps []proof.Step) {
	for i, s := range steps {
		fmt.Printf("%3d. %s\n", i+1, s.String())
	}
}
