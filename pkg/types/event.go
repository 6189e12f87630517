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

// Event types
const (
	EventNone   = 0
	EventKey    = 1
	EventResize = 2
	EventMouse  = 3
	EventMenu   = 4 // the menu bar was clicked
)

type Key int

// Keys that don't produce a character. Control chords are reported as
// a character with ModCtrl set, not as separate keys.
const (
	KeyUnsupported Key = iota
	KeyEsc
	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyF10
	MouseLeft
)

// Modifier is a set of held modifier keys.
type Modifier int

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << 0
	ModAlt  Modifier = 1 << 1
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
	Mod  Modifier
	X    int
	Y    int
}

// A Chord is a key or character plus the modifiers held with it.
type Chord struct {
	Key Key
	Ch  rune
	Mod Modifier
}

func (e *Event) Chord() Chord {
	return Chord{Key: e.Key, Ch: e.Ch, Mod: e.Mod}
}
