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
	"strings"
)

// A Range is a selection. Anchor is where the selection started and
// Cursor is where the insertion point is; Cursor may come before Anchor.
type Range struct {
	Anchor int
	Cursor int
}

func (r Range) Start() int {
	if r.Anchor < r.Cursor {
		return r.Anchor
	}
	return r.Cursor
}

func (r Range) End() int {
	if r.Anchor > r.Cursor {
		return r.Anchor
	}
	return r.Cursor
}

func (r Range) Empty() bool {
	return r.Anchor == r.Cursor
}

// A Buffer is the document being edited.
type Buffer struct {
	text      []rune
	selection Range
}

func NewBuffer() *Buffer {
	return &Buffer{text: make([]rune, 0)}
}

func (b *Buffer) Text() string {
	return string(b.text)
}

// SetText replaces the whole document and moves the cursor to the start.
func (b *Buffer) SetText(s string) {
	b.text = []rune(s)
	b.selection = Range{}
}

func (b *Buffer) Len() int {
	return len(b.text)
}

func (b *Buffer) Start() int {
	return 0
}

func (b *Buffer) End() int {
	return len(b.text)
}

func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.text) {
		return len(b.text)
	}
	return pos
}

// Insert adds s at pos. Selection offsets at or after pos move with the text.
func (b *Buffer) Insert(pos int, s string) {
	if s == "" {
		return
	}
	pos = b.clamp(pos)
	inserted := []rune(s)
	line := make([]rune, 0, len(b.text)+len(inserted))
	line = append(line, b.text[0:pos]...)
	line = append(line, inserted...)
	line = append(line, b.text[pos:]...)
	b.text = line

	shift := func(offset int) int {
		if offset >= pos {
			return offset + len(inserted)
		}
		return offset
	}
	b.selection.Anchor = shift(b.selection.Anchor)
	b.selection.Cursor = shift(b.selection.Cursor)
}

// Delete removes the text between start and end and returns it.
// The bounds are clamped and may be given in either order.
func (b *Buffer) Delete(start, end int) string {
	start = b.clamp(start)
	end = b.clamp(end)
	if start > end {
		start, end = end, start
	}
	if start == end {
		return ""
	}
	deleted := string(b.text[start:end])
	b.text = append(b.text[0:start:start], b.text[end:]...)

	shift := func(offset int) int {
		switch {
		case offset >= end:
			return offset - (end - start)
		case offset > start:
			return start
		default:
			return offset
		}
	}
	b.selection.Anchor = shift(b.selection.Anchor)
	b.selection.Cursor = shift(b.selection.Cursor)
	return deleted
}

func (b *Buffer) Selection() Range {
	return b.selection
}

func (b *Buffer) Select(anchor, cursor int) {
	b.selection = Range{Anchor: b.clamp(anchor), Cursor: b.clamp(cursor)}
}

func (b *Buffer) SelectAll() {
	b.selection = Range{Anchor: b.Start(), Cursor: b.End()}
}

func (b *Buffer) Cursor() int {
	return b.selection.Cursor
}

// SetCursor moves the insertion point and collapses the selection.
func (b *Buffer) SetCursor(pos int) {
	pos = b.clamp(pos)
	b.selection = Range{Anchor: pos, Cursor: pos}
}

func (b *Buffer) SelectedText() string {
	return string(b.text[b.selection.Start():b.selection.End()])
}

// DeleteSelection removes the selected text and returns it.
func (b *Buffer) DeleteSelection() string {
	if b.selection.Empty() {
		return ""
	}
	start := b.selection.Start()
	deleted := b.Delete(start, b.selection.End())
	b.SetCursor(start)
	return deleted
}

// InsertAtCursor replaces the selection with s, leaving the cursor after it.
func (b *Buffer) InsertAtCursor(s string) {
	b.DeleteSelection()
	pos := b.selection.Cursor
	b.Insert(pos, s)
	b.SetCursor(pos + len([]rune(s)))
}

// Backspace deletes the selection, or the character before the cursor.
func (b *Buffer) Backspace() {
	if !b.selection.Empty() {
		b.DeleteSelection()
		return
	}
	pos := b.selection.Cursor
	if pos > 0 {
		b.Delete(pos-1, pos)
	}
}

// DeleteForward deletes the selection, or the character after the cursor.
func (b *Buffer) DeleteForward() {
	if !b.selection.Empty() {
		b.DeleteSelection()
		return
	}
	pos := b.selection.Cursor
	b.Delete(pos, pos+1)
}

// Lines returns the text split at newlines. An empty document has one empty line.
func (b *Buffer) Lines() []string {
	return strings.Split(string(b.text), "\n")
}

func (b *Buffer) LineCount() int {
	count := 1
	for _, c := range b.text {
		if c == '\n' {
			count++
		}
	}
	return count
}
