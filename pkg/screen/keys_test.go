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
	"testing"

	"github.com/nsf/termbox-go"

	meow "github.com/meownix/meowcode/pkg/types"
)

func TestTranslateKeys(t *testing.T) {
	cases := []struct {
		in  termbox.Event
		out meow.Event
	}{
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlS}, meow.Event{Type: meow.EventKey, Ch: 's', Mod: meow.ModCtrl}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlO}, meow.Event{Type: meow.EventKey, Ch: 'o', Mod: meow.ModCtrl}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlQ}, meow.Event{Type: meow.EventKey, Ch: 'q', Mod: meow.ModCtrl}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlA}, meow.Event{Type: meow.EventKey, Ch: 'a', Mod: meow.ModCtrl}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlZ}, meow.Event{Type: meow.EventKey, Ch: 'z', Mod: meow.ModCtrl}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyTab}, meow.Event{Type: meow.EventKey, Key: meow.KeyTab}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, meow.Event{Type: meow.EventKey, Key: meow.KeyEnter}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyBackspace}, meow.Event{Type: meow.EventKey, Key: meow.KeyBackspace}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyBackspace2}, meow.Event{Type: meow.EventKey, Key: meow.KeyBackspace}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyF10}, meow.Event{Type: meow.EventKey, Key: meow.KeyF10}},
		{termbox.Event{Type: termbox.EventKey, Ch: 'S'}, meow.Event{Type: meow.EventKey, Ch: 'S'}},
		{termbox.Event{Type: termbox.EventKey, Ch: 'x', Mod: termbox.ModAlt}, meow.Event{Type: meow.EventKey, Ch: 'x', Mod: meow.ModAlt}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyF1}, meow.Event{Type: meow.EventKey}},
		{termbox.Event{Type: termbox.EventMouse, Key: termbox.MouseLeft, MouseX: 4, MouseY: 7}, meow.Event{Type: meow.EventMouse, Key: meow.MouseLeft, X: 4, Y: 7}},
		{termbox.Event{Type: termbox.EventResize, Width: 80, Height: 24}, meow.Event{Type: meow.EventResize, X: 80, Y: 24}},
	}
	for _, c := range cases {
		if got := translate(c.in); *got != c.out {
			t.Errorf("translate(%+v) = %+v, want %+v", c.in, *got, c.out)
		}
	}
}
