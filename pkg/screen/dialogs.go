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
	"strings"

	"github.com/nsf/termbox-go"

	meow "github.com/meownix/meowcode/pkg/types"
)

// OpenPath asks for the path of a file to open on the status line.
func (s *Screen) OpenPath() (string, bool, error) {
	return s.prompt("Open file: ", "")
}

// SavePath asks for the path to save to, starting from suggested.
func (s *Screen) SavePath(suggested string) (string, bool, error) {
	return s.prompt("Save as: ", suggested)
}

func (s *Screen) prompt(label, initial string) (string, bool, error) {
	input := newLineInput(initial)
	for {
		s.draw(false)
		s.renderPrompt(label, input)
		termbox.Flush()
		event, err := s.nextEvent()
		if err != nil {
			return "", false, err
		}
		if done, accepted := input.handle(event); done {
			if !accepted {
				return "", false, nil
			}
			return strings.TrimSpace(input.String()), true, nil
		}
	}
}

func (s *Screen) renderPrompt(label string, input *lineInput) {
	y := s.size.Rows - 1
	fg, bg := s.theme.menuFg, s.theme.menuBg
	s.fillRow(y, fg, bg)
	x := s.drawText(0, y, label, fg, bg)

	// keep the cursor visible when the path is wider than the screen
	room := s.size.Cols - x - 1
	start := 0
	for room > 0 && stringWidth(string(input.text[start:input.cursor])) > room {
		start++
	}
	cursor := s.drawText(x, y, string(input.text[start:input.cursor]), fg, bg)
	s.drawText(cursor, y, string(input.text[input.cursor:]), fg, bg)
	termbox.SetCursor(cursor, y)
}

// Menu opens the File menu below the menu bar and returns the chosen command.
func (s *Screen) Menu() (meow.Command, bool, error) {
	m := newMenu(fileMenu)
	for {
		s.draw(true)
		s.renderMenu(m)
		termbox.HideCursor()
		termbox.Flush()
		event, err := s.nextEvent()
		if err != nil {
			return meow.CommandNone, false, err
		}
		if command, done := m.handle(event); done {
			return command, command != meow.CommandNone, nil
		}
	}
}

func (s *Screen) renderMenu(m *menu) {
	for i, item := range m.items {
		y := i + 1
		fg, bg := s.theme.menuFg, s.theme.menuBg
		if i == m.selected {
			fg, bg = s.theme.selFg, s.theme.selBg
		}
		for x := 0; x < menuWidth && x < s.size.Cols; x++ {
			termbox.SetCell(x, y, ' ', fg, bg)
		}
		s.drawText(1, y, item.label, fg, bg)
		s.drawText(menuWidth-1-stringWidth(item.shortcut), y, item.shortcut, fg, bg)
	}
}

// About shows information about the editor until a key is pressed.
func (s *Screen) About(info meow.AboutInfo) error {
	lines := []string{
		info.Name + " " + info.Version,
		"",
		info.Comments,
		"",
		info.Copyright,
		info.Website,
		info.License,
		"",
		"Press any key",
	}
	for {
		s.draw(false)
		s.renderBox(lines)
		termbox.HideCursor()
		termbox.Flush()
		event, err := s.nextEvent()
		if err != nil {
			return err
		}
		if event.Type == meow.EventKey || (event.Type == meow.EventMouse && event.Key == meow.MouseLeft) {
			return nil
		}
	}
}

// renderBox draws lines centered in a framed box.
func (s *Screen) renderBox(lines []string) {
	width := 0
	for _, line := range lines {
		if w := stringWidth(line); w > width {
			width = w
		}
	}
	width += 4
	height := len(lines) + 2
	left := (s.size.Cols - width) / 2
	top := (s.size.Rows - height) / 2
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	fg, bg := s.theme.menuFg, s.theme.menuBg
	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			c := ' '
			switch {
			case (y == top || y == top+height-1) && (x == left || x == left+width-1):
				c = '+'
			case y == top || y == top+height-1:
				c = '-'
			case x == left || x == left+width-1:
				c = '|'
			}
			termbox.SetCell(x, y, c, fg, bg)
		}
	}
	for i, line := range lines {
		x := left + (width-stringWidth(line))/2
		s.drawText(x, top+1+i, line, fg, bg)
	}
}
