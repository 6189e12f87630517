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

package screen

import (
	"unicode"

	meow "github.com/meownix/meowcode/pkg/types"
)

const menuTitle = " File "

type menuItem struct {
	label    string
	shortcut string
	hotkey   rune
	command  meow.Command
}

var fileMenu = []menuItem{
	{label: "Open", shortcut: "Ctrl+O", hotkey: 'o', command: meow.CommandOpen},
	{label: "Save", shortcut: "Ctrl+S", hotkey: 's', command: meow.CommandSave},
	{label: "Quit", shortcut: "Ctrl+Q", hotkey: 'q', command: meow.CommandQuit},
	{label: "About", hotkey: 'a', command: meow.CommandAbout},
}

// menuWidth is wide enough for every label and shortcut, with padding.
const menuWidth = 18

// A menu is an open dropdown. Its items are drawn on the rows below the menu bar.
type menu struct {
	items    []menuItem
	selected int
}

func newMenu(items []menuItem) *menu {
	return &menu{items: items}
}

// handle processes one event. When the menu closes it returns done, with the
// chosen command or CommandNone if it was dismissed.
func (m *menu) handle(event *meow.Event) (command meow.Command, done bool) {
	switch event.Type {
	case meow.EventKey:
		return m.handleKey(event)
	case meow.EventMouse:
		if event.Key != meow.MouseLeft {
			return meow.CommandNone, false
		}
		row := event.Y - 1
		if event.Y == 0 || event.X >= menuWidth || row >= len(m.items) {
			return meow.CommandNone, true
		}
		return m.items[row].command, true
	}
	return meow.CommandNone, false
}

func (m *menu) handleKey(event *meow.Event) (meow.Command, bool) {
	switch event.Key {
	case meow.KeyEsc, meow.KeyF10:
		return meow.CommandNone, true
	case meow.KeyArrowUp:
		m.selected = (m.selected + len(m.items) - 1) % len(m.items)
		return meow.CommandNone, false
	case meow.KeyArrowDown, meow.KeyTab:
		m.selected = (m.selected + 1) % len(m.items)
		return meow.CommandNone, false
	case meow.KeyEnter:
		return m.items[m.selected].command, true
	}
	if event.Mod == meow.ModNone && event.Ch != 0 {
		ch := unicode.ToLower(event.Ch)
		for _, item := range m.items {
			if item.hotkey == ch {
				return item.command, true
			}
		}
	}
	return meow.CommandNone, false
}
