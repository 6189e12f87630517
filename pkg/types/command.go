//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package types

// A Command is a discrete action that a shortcut, a menu item or a script can trigger.
type Command int

const (
	CommandNone Command = iota
	CommandOpen
	CommandSave
	CommandQuit
	CommandSelectAll
	CommandAbout
	CommandMenu
	CommandCopy
	CommandCut
	CommandPaste
)

var commandNames = map[Command]string{
	CommandNone:      "none",
	CommandOpen:      "open",
	CommandSave:      "save",
	CommandQuit:      "quit",
	CommandSelectAll: "select-all",
	CommandAbout:     "about",
	CommandMenu:      "menu",
	CommandCopy:      "copy",
	CommandCut:       "cut",
	CommandPaste:     "paste",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

