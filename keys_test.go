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
	"strings"
	"testing"
)

// TestSplitKeys verifies that splitKeys tokenizes with shell quoting.
func TestSplitKeys(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"10 20 30", []string{"10", "20", "30"}},
		{`apple "new york" banana`, []string{"apple", "new york", "banana"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{`'single quoted' x`, []string{"single quoted", "x"}},
	}

	for _, tc := range tests {
		parts, err := splitKeys(tc.input)
		if err != nil {
			t.Errorf("splitKeys(%q) returned error: %v", tc.input, err)
			continue
		}
		if len(parts) != len(tc.expected) {
			t.Errorf("splitKeys(%q): expected %v, got %v", tc.input, tc.expected, parts)
			continue
		}
		for i := range parts {
			if parts[i] != tc.expected[i] {
				t.Errorf("splitKeys(%q): expected %v, got %v", tc.input, tc.expected, parts)
				break
			}
		}
	}
}

func TestSplitKeysUnterminatedQuote(t *testing.T) {
	if _, err := splitKeys(`"open`); err == nil {
		t.Error("Expected error for unterminated quote, got nil")
	}
}

func TestReadKeyFile(t *testing.T) {
	path := writeTempFile(t, "keys.txt", "# primes\n2 3 5\n\n7\n   # indented comment\n11 13\n")

	tokens, err := readKeyFile(path)
	if err != nil {
		t.Fatalf("readKeyFile: %v", err)
	}

	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	if got := strings.Join(texts, ","); got != "2,3,5,7,11,13" {
		t.Errorf("keys = %s", got)
	}
	if !strings.HasSuffix(tokens[3].Source, "keys.txt:4") {
		t.Errorf("source of 7 = %q; want line 4", tokens[3].Source)
	}
}

func TestReadKeyFileMissing(t *testing.T) {
	_, err := readKeyFile("/nonexistent/keys.txt")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestCollectKeysOrder(t *testing.T) {
	path := writeTempFile(t, "keys.txt", "5 6\n")

	tokens, err := collectKeys([]string{"1", "2"}, "3 4", path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1", "2", "3", "4", "5", "6"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens; want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Text != want[i] {
			t.Errorf("token %d = %q; want %q", i, tok.Text, want[i])
		}
	}
}
