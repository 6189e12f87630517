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
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	meow "github.com/meownix/meowcode/pkg/types"
)

// A lineInput is the text field of a path prompt.
type lineInput struct {
	text   []rune
	cursor int
}

func newLineInput(initial string) *lineInput {
	text := []rune(initial)
	return &lineInput{text: text, cursor: len(text)}
}

func (l *lineInput) String() string {
	return string(l.text)
}

func (l *lineInput) insert(s string) {
	inserted := []rune(s)
	line := make([]rune, 0, len(l.text)+len(inserted))
	line = append(line, l.text[0:l.cursor]...)
	line = append(line, inserted...)
	line = append(line, l.text[l.cursor:]...)
	l.text = line
	l.cursor += len(inserted)
}

// handle processes one event. When the prompt closes it returns done;
// accepted is false if the prompt was cancelled or left empty.
func (l *lineInput) handle(event *meow.Event) (done bool, accepted bool) {
	if event.Type != meow.EventKey {
		return false, false
	}
	if event.Mod == meow.ModCtrl {
		if event.Ch == 'u' {
			l.text = l.text[0:0]
			l.cursor = 0
		}
		return false, false
	}
	switch event.Key {
	case meow.KeyEsc:
		return true, false
	case meow.KeyEnter:
		return true, strings.TrimSpace(l.String()) != ""
	case meow.KeyBackspace:
		if l.cursor > 0 {
			l.text = append(l.text[0:l.cursor-1], l.text[l.cursor:]...)
			l.cursor--
		}
	case meow.KeyDelete:
		if l.cursor < len(l.text) {
			l.text = append(l.text[0:l.cursor], l.text[l.cursor+1:]...)
		}
	case meow.KeyArrowLeft:
		if l.cursor > 0 {
			l.cursor--
		}
	case meow.KeyArrowRight:
		if l.cursor < len(l.text) {
			l.cursor++
		}
	case meow.KeyHome:
		l.cursor = 0
	case meow.KeyEnd:
		l.cursor = len(l.text)
	case meow.KeySpace:
		l.insert(" ")
	case meow.KeyTab:
		l.complete()
	default:
		if event.Ch != 0 && event.Mod == meow.ModNone {
			l.insert(string(event.Ch))
		}
	}
	return false, false
}

// complete extends the path before the cursor to the longest prefix shared by
// every matching file. A single matching directory gets a trailing separator.
func (l *lineInput) complete() {
	prefix := string(l.text[0:l.cursor])
	matches, err := filepath.Glob(globEscape(prefix) + "*")
	if err != nil || len(matches) == 0 {
		return
	}
	common := matches[0]
	for _, m := range matches[1:] {
		for !strings.HasPrefix(m, common) {
			common = common[0 : len(common)-1]
		}
	}
	for !utf8.ValidString(common) {
		common = common[0 : len(common)-1]
	}
	if !strings.HasPrefix(common, prefix) {
		return
	}
	if len(matches) == 1 {
		if info, err := os.Stat(common); err == nil && info.IsDir() {
			common += string(filepath.Separator)
		}
	}
	if len(common) > len(prefix) {
		l.insert(common[len(prefix):])
	}
}

func globEscape(path string) string {
	var b strings.Builder
	for _, r := range path {
		switch {
		case r == '*', r == '?', r == '[':
			b.WriteRune('\\')
		case r == '\\' && filepath.Separator != '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
