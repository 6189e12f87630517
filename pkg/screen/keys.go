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
	"github.com/nsf/termbox-go"

	meow "github.com/meownix/meowcode/pkg/types"
)

// translate converts a termbox event into a meowcode event.
// Mouse positions are left in screen coordinates.
func translate(ev termbox.Event) *meow.Event {
	switch ev.Type {
	case termbox.EventKey:
		event := &meow.Event{Type: meow.EventKey, Ch: ev.Ch}
		if ev.Mod&termbox.ModAlt != 0 {
			event.Mod |= meow.ModAlt
		}
		if ev.Ch == 0 {
			event.Key, event.Ch, event.Mod = key(ev.Key, event.Mod)
		}
		return event
	case termbox.EventMouse:
		event := &meow.Event{Type: meow.EventMouse, X: ev.MouseX, Y: ev.MouseY}
		if ev.Key == termbox.MouseLeft {
			event.Key = meow.MouseLeft
		}
		return event
	case termbox.EventResize:
		return &meow.Event{Type: meow.EventResize, X: ev.Width, Y: ev.Height}
	default:
		return &meow.Event{Type: meow.EventNone}
	}
}

// key maps a termbox key to a meowcode key, or to a control chord on a letter.
// Tab, Enter and Backspace share codes with Ctrl+I, Ctrl+M and Ctrl+H;
// they are reported as keys.
func key(k termbox.Key, mod meow.Modifier) (meow.Key, rune, meow.Modifier) {
	switch k {
	case termbox.KeyArrowDown:
		return meow.KeyArrowDown, 0, mod
	case termbox.KeyArrowLeft:
		return meow.KeyArrowLeft, 0, mod
	case termbox.KeyArrowRight:
		return meow.KeyArrowRight, 0, mod
	case termbox.KeyArrowUp:
		return meow.KeyArrowUp, 0, mod
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return meow.KeyBackspace, 0, mod
	case termbox.KeyDelete:
		return meow.KeyDelete, 0, mod
	case termbox.KeyEnd:
		return meow.KeyEnd, 0, mod
	case termbox.KeyEnter:
		return meow.KeyEnter, 0, mod
	case termbox.KeyEsc:
		return meow.KeyEsc, 0, mod
	case termbox.KeyHome:
		return meow.KeyHome, 0, mod
	case termbox.KeyPgdn:
		return meow.KeyPgdn, 0, mod
	case termbox.KeyPgup:
		return meow.KeyPgup, 0, mod
	case termbox.KeySpace:
		return meow.KeySpace, 0, mod
	case termbox.KeyTab:
		return meow.KeyTab, 0, mod
	case termbox.KeyF10:
		return meow.KeyF10, 0, mod
	}
	if k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ {
		return meow.KeyUnsupported, 'a' + rune(k-termbox.KeyCtrlA), mod | meow.ModCtrl
	}
	return meow.KeyUnsupported, 0, mod
}
