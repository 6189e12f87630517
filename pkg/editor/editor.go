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

package editor

import (
	"errors"
	"log"
	"unicode/utf8"

	"github.com/meownix/meowcode/pkg/buffer"
	"github.com/meownix/meowcode/pkg/fileio"
	meow "github.com/meownix/meowcode/pkg/types"
)

var ErrNoClipboard = errors.New("no clipboard configured")

// The Editor owns the document and the state that lives as long as the session.
// There is typically only one editor in a meowcode instance.
type Editor struct {
	buffer     *buffer.Buffer // the document being edited
	files      meow.FileIO    // used to read and write documents
	clipboard  meow.Clipboard // used to cut/copy and paste
	lastOpened PathTracker    // offered as the destination when saving
}

// NewEditor creates an editor with an empty document.
// A nil FileIO reads and writes the local disk.
func NewEditor(files meow.FileIO) *Editor {
	if files == nil {
		files = fileio.Disk{}
	}
	return &Editor{
		buffer: buffer.NewBuffer(),
		files:  files,
	}
}

func (e *Editor) SetClipboard(c meow.Clipboard) {
	e.clipboard = c
}

func (e *Editor) GetBuffer() *buffer.Buffer {
	return e.buffer
}

func (e *Editor) LastOpened() (string, bool) {
	return e.lastOpened.Get()
}

// ReadFile replaces the whole document with the contents of path.
// If the file can't be read, or isn't UTF-8 text, the document and the last
// opened path are unchanged.
func (e *Editor) ReadFile(path string) error {
	text, err := e.files.Read(path)
	if err == nil && !utf8.ValidString(text) {
		err = &fileio.ReadError{Path: path, Err: fileio.ErrNotText}
	}
	if err != nil {
		log.Printf("open %s: %v", path, err)
		return err
	}
	e.buffer.SetText(text)
	e.lastOpened.Set(path)
	return nil
}

// WriteFile writes the whole document to path.
// Saving never changes the last opened path.
func (e *Editor) WriteFile(path string) error {
	err := e.files.Write(path, e.buffer.Text())
	if err != nil {
		log.Printf("warning: save %s: %v", path, err)
		return err
	}
	return nil
}

func (e *Editor) SelectAll() {
	e.buffer.SelectAll()
}

// Copy puts the selection on the clipboard.
func (e *Editor) Copy() error {
	if e.clipboard == nil {
		log.Printf("copy: %v", ErrNoClipboard)
		return ErrNoClipboard
	}
	if e.buffer.Selection().Empty() {
		return nil
	}
	err := e.clipboard.WriteAll(e.buffer.SelectedText())
	if err != nil {
		log.Printf("copy: %v", err)
	}
	return err
}

// Cut puts the selection on the clipboard and removes it from the document.
// The document is only changed if the clipboard accepted the text.
func (e *Editor) Cut() error {
	if e.buffer.Selection().Empty() {
		return nil
	}
	if err := e.Copy(); err != nil {
		return err
	}
	e.buffer.DeleteSelection()
	return nil
}

// Paste replaces the selection with the clipboard contents.
func (e *Editor) Paste() error {
	if e.clipboard == nil {
		log.Printf("paste: %v", ErrNoClipboard)
		return ErrNoClipboard
	}
	text, err := e.clipboard.ReadAll()
	if err != nil {
		log.Printf("paste: %v", err)
		return err
	}
	e.buffer.InsertAtCursor(text)
	return nil
}
