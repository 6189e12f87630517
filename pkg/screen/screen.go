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
	"fmt"
	"path/filepath"

	"github.com/nsf/termbox-go"

	"github.com/meownix/meowcode/pkg/commander"
	"github.com/meownix/meowcode/pkg/config"
	"github.com/meownix/meowcode/pkg/editor"
	meow "github.com/meownix/meowcode/pkg/types"
)

// The Screen draws the state of an Editor and runs its dialogs.
// The top row holds the menu bar and the bottom row the status line.
type Screen struct {
	size      meow.Size // screen size
	offset    meow.Size // display offset into the document
	theme     theme
	tabWidth  int
	editor    *editor.Editor
	commander *commander.Commander
}

func NewScreen(c *config.Config) (*Screen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.OutputNormal)
	return &Screen{theme: newTheme(c.Theme), tabWidth: c.TabWidth}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Attach sets the editor and commander that the screen draws.
func (s *Screen) Attach(e *editor.Editor, c *commander.Commander) {
	s.editor = e
	s.commander = c
}

func (s *Screen) textRows() int {
	rows := s.size.Rows - 2
	if rows < 1 {
		return 1
	}
	return rows
}

func (s *Screen) Render() {
	s.draw(false)
	termbox.Flush()
}

func (s *Screen) draw(menuOpen bool) {
	termbox.Clear(s.theme.fg, s.theme.bg)
	s.size.Cols, s.size.Rows = termbox.Size()
	if s.commander != nil {
		s.commander.SetPageRows(s.textRows())
	}
	s.renderMenuBar(menuOpen)
	s.renderBuffer()
	s.renderStatusBar()
}

// drawText draws s starting at x and returns the column after it.
func (s *Screen) drawText(x, y int, text string, fg, bg termbox.Attribute) int {
	for _, c := range text {
		if x >= s.size.Cols {
			break
		}
		termbox.SetCell(x, y, c, fg, bg)
		x += cellWidth(c, x, s.tabWidth)
	}
	return x
}

func (s *Screen) fillRow(y int, fg, bg termbox.Attribute) {
	for x := 0; x < s.size.Cols; x++ {
		termbox.SetCell(x, y, ' ', fg, bg)
	}
}

func (s *Screen) renderMenuBar(open bool) {
	fg, bg := s.theme.menuFg, s.theme.menuBg
	s.fillRow(0, fg, bg)
	if open {
		s.drawText(0, 0, menuTitle, s.theme.selFg, s.theme.selBg)
	} else {
		s.drawText(0, 0, menuTitle, fg, bg)
	}
	name := commander.About.Name + " "
	s.drawText(s.size.Cols-stringWidth(name), 0, name, fg, bg)
}

// Recompute the display offset to keep the cursor onscreen.
func (s *Screen) adjustDisplayOffsetForScrolling(cursor meow.Point) {
	textRows := s.textRows()
	if cursor.Row < s.offset.Rows {
		// scroll up
		s.offset.Rows = cursor.Row
	}
	if cursor.Row-s.offset.Rows >= textRows {
		// scroll down
		s.offset.Rows = cursor.Row - textRows + 1
	}
	if cursor.Col < s.offset.Cols {
		// scroll left
		s.offset.Cols = cursor.Col
	}
	if cursor.Col-s.offset.Cols >= s.size.Cols {
		// scroll right
		s.offset.Cols = cursor.Col - s.size.Cols + 1
	}
}

// draw the visible part of the document with the selection highlighted
func (s *Screen) renderBuffer() {
	if s.editor == nil {
		return
	}
	b := s.editor.GetBuffer()
	lines := b.Lines()
	position := b.Position(b.Cursor())
	cursorLine := []rune(lines[position.Row])
	cursor := meow.Point{Row: position.Row, Col: displayColumn(cursorLine, position.Col, s.tabWidth)}
	s.adjustDisplayOffsetForScrolling(cursor)

	selection := b.Selection()
	textRows := s.textRows()
	start := 0 // offset of the first rune of each line
	for row, line := range lines {
		text := []rune(line)
		y := row - s.offset.Rows + 1
		if row >= s.offset.Rows && y <= textRows {
			x := 0
			for i, c := range text {
				width := cellWidth(c, x, s.tabWidth)
				fg, bg := s.theme.fg, s.theme.bg
				if offset := start + i; offset >= selection.Start() && offset < selection.End() {
					fg, bg = s.theme.selFg, s.theme.selBg
				}
				screenX := x - s.offset.Cols
				if screenX >= 0 && screenX+width <= s.size.Cols {
					if c == '\t' {
						for j := 0; j < width; j++ {
							termbox.SetCell(screenX+j, y, ' ', fg, bg)
						}
					} else {
						termbox.SetCell(screenX, y, c, fg, bg)
					}
				}
				x += width
			}
		}
		start += len(text) + 1
	}
	for row := len(lines) - s.offset.Rows; row < textRows; row++ {
		termbox.SetCell(0, row+1, '~', s.theme.fg, s.theme.bg)
	}
	termbox.SetCursor(cursor.Col-s.offset.Cols, cursor.Row-s.offset.Rows+1)
}

// Compute the text to display on the status line.
func (s *Screen) computeStatusText(length int) string {
	b := s.editor.GetBuffer()
	p := b.Position(b.Cursor())
	finalText := fmt.Sprintf(" %d:%d ", p.Row+1, p.Col+1)

	text := " [untitled] "
	if path, ok := s.editor.LastOpened(); ok {
		text = " " + filepath.Base(path) + " "
	}
	if s.commander != nil && s.commander.GetMessage() != "" {
		text += "- " + s.commander.GetMessage() + " "
	}
	for stringWidth(text) < length-stringWidth(finalText) {
		text += " "
	}
	return text + finalText
}

func (s *Screen) renderStatusBar() {
	if s.editor == nil {
		return
	}
	y := s.size.Rows - 1
	s.fillRow(y, s.theme.menuFg, s.theme.menuBg)
	s.drawText(0, y, s.computeStatusText(s.size.Cols), s.theme.menuFg, s.theme.menuBg)
}

// nextEvent waits for the next terminal event.
func (s *Screen) nextEvent() (*meow.Event, error) {
	ev := termbox.PollEvent()
	if ev.Type == termbox.EventError {
		return nil, ev.Err
	}
	return translate(ev), nil
}

// GetNextEvent waits for the next event for the commander.
// Clicks on the menu bar become menu events and clicks in the text
// are converted to document rows and columns.
func (s *Screen) GetNextEvent() (*meow.Event, error) {
	event, err := s.nextEvent()
	if err != nil {
		return nil, err
	}
	if event.Type == meow.EventResize {
		termbox.Flush()
	}
	if event.Type != meow.EventMouse {
		return event, nil
	}
	if event.Key != meow.MouseLeft {
		return &meow.Event{Type: meow.EventNone}, nil
	}
	if event.Y == 0 {
		if event.X < stringWidth(menuTitle) {
			return &meow.Event{Type: meow.EventMenu}, nil
		}
		return &meow.Event{Type: meow.EventNone}, nil
	}
	if event.Y > s.textRows() || s.editor == nil {
		return &meow.Event{Type: meow.EventNone}, nil
	}
	lines := s.editor.GetBuffer().Lines()
	row := event.Y - 1 + s.offset.Rows
	if row >= len(lines) {
		row = len(lines) - 1
	}
	event.Y = row
	event.X = indexAtColumn([]rune(lines[row]), event.X+s.offset.Cols, s.tabWidth)
	return event, nil
}
