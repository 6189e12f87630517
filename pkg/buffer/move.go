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

package buffer

import (
	meow "github.com/meownix/meowcode/pkg/types"
)

// Position converts an offset into a row and column.
func (b *Buffer) Position(offset int) meow.Point {
	offset = b.clamp(offset)
	var p meow.Point
	for _, c := range b.text[0:offset] {
		if c == '\n' {
			p.Row++
			p.Col = 0
		} else {
			p.Col++
		}
	}
	return p
}

// Offset converts a row and column into an offset.
// Rows past the end go to the end; columns past the end of a row go to the end of the row.
func (b *Buffer) Offset(p meow.Point) int {
	if p.Row < 0 {
		return 0
	}
	row := 0
	start := 0
	for i, c := range b.text {
		if row == p.Row {
			break
		}
		if c == '\n' {
			row++
			start = i + 1
		}
	}
	if row < p.Row {
		return len(b.text)
	}
	end := start
	for end < len(b.text) && b.text[end] != '\n' {
		end++
	}
	col := p.Col
	if col < 0 {
		col = 0
	}
	if start+col > end {
		return end
	}
	return start + col
}

// MoveLeft collapses a selection to its start, or moves the cursor back one character.
func (b *Buffer) MoveLeft() {
	if !b.selection.Empty() {
		b.SetCursor(b.selection.Start())
		return
	}
	b.SetCursor(b.selection.Cursor - 1)
}

// MoveRight collapses a selection to its end, or moves the cursor forward one character.
func (b *Buffer) MoveRight() {
	if !b.selection.Empty() {
		b.SetCursor(b.selection.End())
		return
	}
	b.SetCursor(b.selection.Cursor + 1)
}

func (b *Buffer) MoveUp(multiplier int) {
	p := b.Position(b.selection.Cursor)
	if p.Row == 0 {
		b.SetCursor(b.Start())
		return
	}
	p.Row -= multiplier
	if p.Row < 0 {
		p.Row = 0
	}
	b.SetCursor(b.Offset(p))
}

func (b *Buffer) MoveDown(multiplier int) {
	p := b.Position(b.selection.Cursor)
	if p.Row == b.LineCount()-1 {
		b.SetCursor(b.End())
		return
	}
	p.Row += multiplier
	b.SetCursor(b.Offset(p))
}

func (b *Buffer) MoveLineStart() {
	p := b.Position(b.selection.Cursor)
	p.Col = 0
	b.SetCursor(b.Offset(p))
}

func (b *Buffer) MoveLineEnd() {
	pos := b.selection.Cursor
	for pos < len(b.text) && b.text[pos] != '\n' {
		pos++
	}
	b.SetCursor(pos)
}
