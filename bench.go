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
	"io"
	"time"

	"github.com/cybrota/avlkit/avl"
	"github.com/cybrota/avlkit/workload"
	"github.com/schollz/progressbar/v3"
)

// progress is reported in batches, per-key updates dominate the run time
const benchProgressBatch = 1024

type BenchResult struct {
	Workload  string
	Size      int
	Elapsed   time.Duration
	Height    int
	Bound     float64
	Rotations map[avl.Case]int
}

// runBench inserts a generated workload into a fresh tree and validates
// the result.
func runBench(manager *workload.Manager, name string, size int, seed int64, out io.Writer, showProgress bool) (*BenchResult, error) {
	if size < 0 {
		return nil, fmt.Errorf("benchmark size must not be negative, got %d", size)
	}
	gen, err := manager.Get(name)
	if err != nil {
		return nil, err
	}
	keys := gen.Keys(size, seed)

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(size,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription(fmt.Sprintf("🌳 Inserting %s keys...", gen.Name())),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(out, "\n✅ Insertion completed!\n")
			}),
		)
	}

	tree := avl.NewOrdered[int]()
	rotations := make(map[avl.Case]int)

	start := time.Now()
	for i, key := range keys {
		rb, _ := tree.InsertTrace(key)
		if rb.Rotated() {
			rotations[rb.Case]++
		}
		if bar != nil && (i+1)%benchProgressBatch == 0 {
			bar.Add(benchProgressBatch)
		}
	}
	elapsed := time.Since(start)

	if bar != nil {
		bar.Finish()
	}

	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("tree invalid after %s workload: %w", gen.Name(), err)
	}

	return &BenchResult{
		Workload:  gen.Name(),
		Size:      size,
		Elapsed:   elapsed,
		Height:    tree.Height(),
		Bound:     heightBound(size),
		Rotations: rotations,
	}, nil
}

func printBenchResult(w io.Writer, res *BenchResult) {
	success, info, warning, _, reset := GetANSIColors()

	fmt.Fprintf(w, "%sWorkload:%s %s (%d keys)\n", info, reset, res.Workload, res.Size)
	fmt.Fprintf(w, "%sElapsed:%s  %s", info, reset, res.Elapsed)
	if res.Size > 0 {
		fmt.Fprintf(w, " (%s per insert)", res.Elapsed/time.Duration(res.Size))
	}
	fmt.Fprintln(w)

	color := success
	if float64(res.Height) > res.Bound {
		color = warning
	}
	fmt.Fprintf(w, "%sHeight:%s   %s%d%s (AVL bound %.2f)\n", info, reset, color, res.Height, reset, res.Bound)

	fmt.Fprintf(w, "%sRotations:%s\n", info, reset)
	for _, c := range []avl.Case{avl.LeftLeft, avl.RightRight, avl.LeftRight, avl.RightLeft} {
		fmt.Fprintf(w, "  • %-12s %d\n", c, res.Rotations[c])
	}
}

func listWorkloads(w io.Writer, manager *workload.Manager) {
	for _, g := range manager.Generators() {
		fmt.Fprintf(w, "  %s%-12s%s %s\n", Green, g.Name(), Reset, g.Description())
	}
}
