// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cybrota/avlkit/avl"
	"github.com/cybrota/avlkit/workload"
)

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ██╗  ██╗██╗████████╗
██╔══██╗██║   ██║██║     ██║ ██╔╝██║╚══██╔══╝
███████║██║   ██║██║     █████╔╝ ██║   ██║
██╔══██║╚██╗ ██╔╝██║     ██╔═██╗ ██║   ██║
██║  ██║ ╚████╔╝ ███████╗██║  ██╗██║   ██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═╝   ╚═╝
Height-balanced binary search trees, one rotation at a time [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree editor",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the interactive editor, optionally preloaded from a key file`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd)
		},
	}
	cmdRun.Flags().String("file", "", "preload keys from a file")

	var cmdInsert = &cobra.Command{
		Use:   "insert [keys...]",
		Short: "Insert keys and print the resulting tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Insert builds a tree from the given keys and prints it sideways, root on the left"),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, outcomes, err := buildIndex(cmd, args)
			if err != nil {
				return err
			}

			trace, _ := cmd.Flags().GetBool("trace")
			if trace {
				for _, out := range outcomes {
					fmt.Println(formatOutcome(out))
				}
				fmt.Println()
			}

			fmt.Print(index.Render())
			printStats(index.Stats())
			return nil
		},
	}
	addKeyFlags(cmdInsert)
	cmdInsert.Flags().Bool("trace", false, "print the rebalance case of every insertion")

	var cmdCheck = &cobra.Command{
		Use:   "check [keys...]",
		Short: "Validate ordering, cached heights and balance",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Check builds a tree from the given keys and verifies every invariant from scratch"),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _, err := buildIndex(cmd, args)
			if err != nil {
				return err
			}

			success, _, _, failure, reset := GetANSIColors()
			printStats(index.Stats())
			if err := index.Validate(); err != nil {
				fmt.Printf("%s✗ invalid tree:%s %v\n", failure, reset, err)
				return err
			}
			fmt.Printf("%s✓ ordering, heights and balance hold%s\n", success, reset)
			return nil
		},
	}
	addKeyFlags(cmdCheck)

	var cmdContains = &cobra.Command{
		Use:   "contains KEY",
		Short: "Report whether a key is in the tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Contains builds a tree from --keys and --file and looks KEY up"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _, err := buildIndex(cmd, nil)
			if err != nil {
				return err
			}
			found, err := index.Contains(args[0])
			if err != nil {
				return err
			}
			if found {
				fmt.Printf("%s%s%s is present\n", Green, args[0], Reset)
			} else {
				fmt.Printf("%s%s%s is absent\n", Red, args[0], Reset)
			}
			return nil
		},
	}
	addKeyFlags(cmdContains)

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Insert a generated workload and report height and rotations",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Bench inserts a generated key order into a fresh tree. Use --workload list to see the choices"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			manager := workload.NewManager()

			name := config.Bench.Workload
			if cmd.Flags().Changed("workload") {
				name, _ = cmd.Flags().GetString("workload")
			}
			if name == "list" {
				listWorkloads(os.Stdout, manager)
				return nil
			}
			size := config.Bench.Size
			if cmd.Flags().Changed("size") {
				size, _ = cmd.Flags().GetInt("size")
			}
			seed := config.Bench.Seed
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetInt64("seed")
			}
			quiet, _ := cmd.Flags().GetBool("quiet")

			res, err := runBench(manager, name, size, seed, os.Stdout, !quiet)
			if err != nil {
				return err
			}
			printBenchResult(os.Stdout, res)
			return nil
		},
	}
	cmdBench.Flags().String("workload", "", "workload name, or list")
	cmdBench.Flags().Int("size", 0, "number of keys to insert")
	cmdBench.Flags().Int64("seed", 0, "seed for the random workload")
	cmdBench.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlkit CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "avlkit",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the editor when no subcommand is provided
			return runEditor(cmd)
		},
	}
	rootCmd.Flags().String("file", "", "preload keys from a file")
	rootCmd.AddCommand(cmdRun, cmdInsert, cmdCheck, cmdContains, cmdBench, cmdUsage, cmdSettings, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().String("keys", "", "keys separated by spaces, quote keys containing spaces")
	cmd.Flags().String("file", "", "read keys from a file, one or more per line")
}

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

// buildIndex creates an index from the configured key type and inserts
// every key named on the command line.
func buildIndex(cmd *cobra.Command, args []string) (KeyIndex, []Outcome, error) {
	config := loadConfigOrDefault()

	index, err := NewKeyIndex(config)
	if err != nil {
		return nil, nil, err
	}

	keysFlag, _ := cmd.Flags().GetString("keys")
	file, _ := cmd.Flags().GetString("file")
	tokens, err := collectKeys(args, keysFlag, file)
	if err != nil {
		return nil, nil, err
	}

	outcomes, err := insertTokens(index, tokens)
	if err != nil {
		return nil, nil, err
	}
	return index, outcomes, nil
}

func runEditor(cmd *cobra.Command) error {
	config := loadConfigOrDefault()

	index, err := NewKeyIndex(config)
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		tokens, err := readKeyFile(file)
		if err != nil {
			return err
		}
		if _, err := insertTokens(index, tokens); err != nil {
			return err
		}
	}

	if err := runBubbleTeaApp(index, config); err != nil {
		log.Fatalf("failed to run the editor: %v", err)
	}
	return nil
}

func formatOutcome(out Outcome) string {
	switch {
	case !out.Added:
		return fmt.Sprintf("%-12s duplicate rejected", out.Key)
	case out.Case == avl.None:
		return fmt.Sprintf("%-12s no rotation", out.Key)
	}
	return fmt.Sprintf("%-12s %s rotation at %s", out.Key, out.Case, out.Pivot)
}

func printStats(stats Stats) {
	_, info, _, _, reset := GetANSIColors()
	fmt.Printf("\n%skeys:%s %d  %sheight:%s %d  %sbound:%s %.2f\n",
		info, reset, stats.Count, info, reset, stats.Height, info, reset, stats.Bound)

	var rotated []string
	for _, c := range []avl.Case{avl.LeftLeft, avl.RightRight, avl.LeftRight, avl.RightLeft} {
		if n := stats.Rotations[c]; n > 0 {
			rotated = append(rotated, fmt.Sprintf("%s %d", c, n))
		}
	}
	if len(rotated) > 0 {
		fmt.Printf("%srotations:%s %s\n", info, reset, strings.Join(rotated, ", "))
	}
}
