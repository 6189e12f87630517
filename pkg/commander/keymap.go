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

package commander

import (
	"unicode"

	meow "github.com/meownix/meowcode/pkg/types"
)

// Each chord names exactly one command. Ctrl chords that aren't listed
// here do nothing; they never fall back to another command.
var shortcuts = map[meow.Chord]meow.Command{
	{Ch: 's', Mod: meow.ModCtrl}: meow.CommandSave,
	{Ch: 'o', Mod: meow.ModCtrl}: meow.CommandOpen,
	{Ch: 'q', Mod: meow.ModCtrl}: meow.CommandQuit,
	{Ch: 'a', Mod: meow.ModCtrl}: meow.CommandSelectAll,
	{Ch: 'c', Mod: meow.ModCtrl}: meow.CommandCopy,
	{Ch: 'x', Mod: meow.ModCtrl}: meow.CommandCut,
	{Ch: 'v', Mod: meow.ModCtrl}: meow.CommandPaste,
	{Key: meow.KeyF10}:           meow.CommandMenu,
}

// Resolve returns the command a chord triggers. Letters match in either case.
func Resolve(chord meow.Chord) (meow.Command, bool) {
	chord.Ch = unicode.ToLower(chord.Ch)
	command, ok := shortcuts[chord]
	return command, ok
}
