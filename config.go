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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configEnvVar = "AVLKIT_CONFIG"

type KeysConfig struct {
	Type string `yaml:"type"` // "int" or "string"
}

type TreeConfig struct {
	Duplicates  string `yaml:"duplicates"` // "right" or "reject"
	ShowHeights bool   `yaml:"show_heights"`
}

type MembershipConfig struct {
	BloomSize   uint `yaml:"bloom_size"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type RenderConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type BenchConfig struct {
	Workload string `yaml:"workload"`
	Size     int    `yaml:"size"`
	Seed     int64  `yaml:"seed"`
}

type Config struct {
	Keys       KeysConfig       `yaml:"keys"`
	Tree       TreeConfig       `yaml:"tree"`
	Membership MembershipConfig `yaml:"membership"`
	Render     RenderConfig     `yaml:"render"`
	Bench      BenchConfig      `yaml:"bench"`
}

var defaultConfig = Config{
	Keys: KeysConfig{
		Type: "int",
	},
	Tree: TreeConfig{
		Duplicates:  "right",
		ShowHeights: true,
	},
	Membership: MembershipConfig{
		BloomSize:   1 << 16,
		BloomHashes: 5,
	},
	Render: RenderConfig{
		CacheTTL: 5 * time.Minute,
	},
	Bench: BenchConfig{
		Workload: "ascending",
		Size:     100000,
		Seed:     1,
	},
}

// LoadConfig reads the user config, falling back to defaults when the file
// is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	// start from the defaults so a partial file only overrides what it names
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	if err := config.validate(); err != nil {
		return defaults(), fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

func (c *Config) validate() error {
	switch c.Keys.Type {
	case "int", "string":
	default:
		return fmt.Errorf("keys.type must be int or string, got %q", c.Keys.Type)
	}
	switch c.Tree.Duplicates {
	case "right", "reject":
	default:
		return fmt.Errorf("tree.duplicates must be right or reject, got %q", c.Tree.Duplicates)
	}
	if c.Membership.BloomSize == 0 || c.Membership.BloomHashes == 0 {
		return fmt.Errorf("membership.bloom_size and bloom_hashes must be positive")
	}
	if c.Bench.Size < 0 {
		return fmt.Errorf("bench.size must not be negative")
	}
	return nil
}

func getConfigPath() (string, error) {
	if p := os.Getenv(configEnvVar); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".avlkit.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 avlkit Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %skeys.type%s: %s\n", Green, Reset, config.Keys.Type)
	fmt.Printf("  • %stree.duplicates%s: %s\n", Green, Reset, config.Tree.Duplicates)
	fmt.Printf("  • %stree.show_heights%s: %t\n\n", Green, Reset, config.Tree.ShowHeights)

	fmt.Printf("🔍 %sMembership filter:%s\n", Green, Reset)
	fmt.Printf("  • %smembership.bloom_size%s: %d bits\n", Green, Reset, config.Membership.BloomSize)
	fmt.Printf("  • %smembership.bloom_hashes%s: %d\n\n", Green, Reset, config.Membership.BloomHashes)

	fmt.Printf("⏱  %sBenchmark:%s\n", Green, Reset)
	fmt.Printf("  • %sbench.workload%s: %s\n", Green, Reset, config.Bench.Workload)
	fmt.Printf("  • %sbench.size%s: %d\n", Green, Reset, config.Bench.Size)
	fmt.Printf("  • %sbench.seed%s: %d\n\n", Green, Reset, config.Bench.Seed)

	if config.Tree.Duplicates == "right" {
		fmt.Printf("💡 Equal keys are stored again in the right subtree. To reject them, edit %s:\n", configPath)
		fmt.Printf("   tree:\n     duplicates: reject\n\n")
	} else {
		fmt.Printf("💡 Equal keys are rejected. To keep them, edit %s:\n", configPath)
		fmt.Printf("   tree:\n     duplicates: right\n\n")
	}
}
