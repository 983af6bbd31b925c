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
package workload

import "fmt"

// Manager keeps generators in registration order
type Manager struct {
	generators []Generator
	byName     map[string]Generator
}

// NewManager creates a manager with all built-in generators
func NewManager() *Manager {
	manager := &Manager{
		byName: make(map[string]Generator),
	}

	// Sorted inputs first, they are the classic worst case for an
	// unbalanced tree
	manager.Register(Ascending{})
	manager.Register(Descending{})
	manager.Register(Random{})
	manager.Register(ZigZag{})
	manager.Register(OrganPipe{})

	return manager
}

// Register adds a generator, replacing any generator with the same name
func (m *Manager) Register(g Generator) {
	if _, exists := m.byName[g.Name()]; !exists {
		m.generators = append(m.generators, g)
	} else {
		for i, old := range m.generators {
			if old.Name() == g.Name() {
				m.generators[i] = g
			}
		}
	}
	m.byName[g.Name()] = g
}

// Get looks up a generator by name
func (m *Manager) Get(name string) (Generator, error) {
	g, ok := m.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownWorkload, name)
	}
	return g, nil
}

// Names lists registered generators in registration order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.generators))
	for _, g := range m.generators {
		names = append(names, g.Name())
	}
	return names
}

// Generators returns the registered generators in registration order
func (m *Manager) Generators() []Generator {
	return append([]Generator(nil), m.generators...)
}
