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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
)

// keyToken is one raw key as typed or read, with where it came from.
type keyToken struct {
	Text   string
	Source string // "args", "input" or "file:line"
}

// splitKeys breaks a line into keys using shell quoting rules, so
// 'new york' stays a single key.
func splitKeys(line string) ([]string, error) {
	keys, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse keys %q: %v", line, err)
	}
	return keys, nil
}

// readKeyFile reads keys from a text file. Every line is split into shell
// words; blank lines and lines starting with '#' are skipped.
func readKeyFile(path string) ([]keyToken, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	// Pre-allocate with an estimate of ~8 bytes per key
	var tokens []keyToken
	if stat, err := file.Stat(); err == nil {
		tokens = make([]keyToken, 0, int(stat.Size()/8))
	}

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words, err := splitKeys(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		for _, w := range words {
			tokens = append(tokens, keyToken{Text: w, Source: fmt.Sprintf("%s:%d", path, lineNo)})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// collectKeys gathers keys from positional arguments, the --keys flag and
// an optional key file, in that order.
func collectKeys(args []string, keysFlag, file string) ([]keyToken, error) {
	var tokens []keyToken
	for _, a := range args {
		tokens = append(tokens, keyToken{Text: a, Source: "args"})
	}

	if keysFlag != "" {
		words, err := splitKeys(keysFlag)
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			tokens = append(tokens, keyToken{Text: w, Source: "--keys"})
		}
	}

	if file != "" {
		fromFile, err := readKeyFile(file)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, fromFile...)
	}

	return tokens, nil
}
