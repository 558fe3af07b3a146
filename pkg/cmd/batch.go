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
	"context"
	"fmt"
	"os"

	"github.com/modalkit/go-tableau/pkg/logic"
	"github.com/modalkit/go-tableau/pkg/search"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] problem_file",
	Short: "prove a file of problems.",
	Long: `Read a YAML file of named proof problems and attempt each one.  Problems run
	 sequentially by default, fanned out across workers with --parallel, or raced
	 to the first success with --race.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		workers := GetUint(cmd, "parallel")
		spaces := readProblemFile(args[0])
		//
		if GetFlag(cmd, "race") {
			runRace(workers, spaces)
			return
		}
		//
		results := search.All(context.Background(), workers, spaces)
		failures := 0
		//
		for _, r := range results {
			printVerdict(r.Space.Name, r.Proved)
			//
			if !r.Proved {
				failures++
			}
		}
		//
		if failures > 0 {
			fmt.Printf("%d of %d problems not proved\n", failures, len(results))
			os.Exit(1)
		}
	},
}

// Race the problems against each other, reporting the first proved one.
func runRace(workers uint, spaces []search.Space) {
	winner, ok := search.Race(context.Background(), workers, spaces)
	//
	if !ok {
		fmt.Println("no problem proved")
		os.Exit(1)
	}
	//
	printVerdict(winner.Space.Name, true)
}

// problem is the YAML shape of one entry in a problem file.
type problem struct {
	Name        string   `yaml:"name"`
	Logic       string   `yaml:"logic"`
	Goal        string   `yaml:"goal"`
	Assumptions []string `yaml:"assumptions"`
	Depth       uint     `yaml:"depth"`
}

// Parse a YAML problem file into search spaces, or exit with a diagnostic.
func readProblemFile(filename string) []search.Space {
	var problems []problem
	//
	bytes, err := os.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &problems)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	spaces := make([]search.Space, len(problems))
	//
	for i, p := range problems {
		name := p.Name
		if name == "" {
			name = p.Goal
		}
		// Problems without an explicit logic default to K.
		l := logic.K
		if p.Logic != "" {
			l = parseLogicOrExit(p.Logic)
		}
		//
		spaces[i] = search.Space{
			Name:        name,
			Logic:       l,
			Goal:        logic.Formula(p.Goal),
			Assumptions: logic.Formulas(p.Assumptions),
			Depth:       p.Depth,
		}
	}
	//
	return spaces
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().UintP("parallel", "p", 1, "number of worker goroutines")
	batchCmd.Flags().Bool("race", false, "stop at the first proved problem")
}
