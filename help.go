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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlkit %s**

Build, inspect and stress height-balanced binary search trees from your terminal.
Every insertion reports which rotation, if any, restored the balance.

Built with Go %s

# 1. Commands
* **run** opens the interactive tree editor (default)
* **insert** inserts keys and prints the resulting tree
* **check** validates ordering, cached heights and balance
* **contains** answers membership for a key
* **bench** inserts a generated workload and reports height and rotations
* **settings** shows and creates the configuration file

# 2. Keys
* Keys are integers by default; set keys.type to string in ~/.avlkit.yaml for text keys
* Key files hold whitespace separated keys, quoted keys may contain spaces
* Lines starting with # are comments

# 3. Equal keys
* By default an equal key is stored again in the right subtree
* Set tree.duplicates to reject to keep keys unique

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}

// tuiHelpMarkdown is shown in the help panel of the interactive editor.
const tuiHelpMarkdown = `# Keys

| Key | Action |
|-----|--------|
| enter | insert the typed keys |
| ?key + enter | check membership |
| tab | switch focus |
| ctrl+y | copy keys in order |
| f1 | toggle this help |
| esc | quit |

Several keys can be typed at once, separated by spaces.
Quote a text key to keep its spaces.
`
