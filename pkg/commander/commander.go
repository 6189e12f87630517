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
	"errors"
	"fmt"

	"github.com/meownix/meowcode/pkg/editor"
	meow "github.com/meownix/meowcode/pkg/types"
)

var About = meow.AboutInfo{
	Name:      "MeowCode",
	Version:   "(Meow)",
	Comments:  "Code at the speed of light.",
	Copyright: "Copyright © 2024-Present Meownix",
	Website:   "about:blank",
	License:   "Thoq License - (Custom License)",
}

var ErrNoPrompter = errors.New("command needs a prompter")

const defaultPageRows = 20

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor   *editor.Editor
	prompter meow.Prompter // runs dialogs; nil when running a script
	mode     int           // editor mode
	message  string        // status message
	pageRows int           // rows moved by page up and page down
}

func NewCommander(e *editor.Editor, p meow.Prompter) *Commander {
	return &Commander{editor: e, prompter: p, mode: meow.ModeEdit, pageRows: defaultPageRows}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != meow.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetPageRows(rows int) {
	if rows > 0 {
		c.pageRows = rows
	}
}

func (c *Commander) ProcessEvent(event *meow.Event) error {
	switch event.Type {
	case meow.EventKey:
		return c.processKey(event)
	case meow.EventMenu:
		return c.Dispatch(meow.CommandMenu)
	case meow.EventMouse:
		return c.processMouse(event)
	default:
		return nil
	}
}

// Dispatch performs a command. Failed reads and writes are logged by the
// editor and go no further; only dialog failures are returned.
func (c *Commander) Dispatch(command meow.Command) error {
	switch command {
	case meow.CommandOpen:
		if c.prompter == nil {
			return ErrNoPrompter
		}
		path, ok, err := c.prompter.OpenPath()
		if err != nil {
			return err
		}
		if ok {
			c.OpenFile(path)
		}
	case meow.CommandSave:
		if c.prompter == nil {
			return ErrNoPrompter
		}
		suggested, _ := c.editor.LastOpened()
		path, ok, err := c.prompter.SavePath(suggested)
		if err != nil {
			return err
		}
		if ok {
			c.SaveFile(path)
		}
	case meow.CommandQuit:
		c.mode = meow.ModeQuit
	case meow.CommandSelectAll:
		c.editor.SelectAll()
	case meow.CommandAbout:
		if c.prompter == nil {
			return ErrNoPrompter
		}
		return c.prompter.About(About)
	case meow.CommandMenu:
		if c.prompter == nil {
			return ErrNoPrompter
		}
		chosen, ok, err := c.prompter.Menu()
		if err != nil {
			return err
		}
		if ok && chosen != meow.CommandMenu {
			return c.Dispatch(chosen)
		}
	case meow.CommandCopy:
		c.editor.Copy()
	case meow.CommandCut:
		c.editor.Cut()
	case meow.CommandPaste:
		c.editor.Paste()
	default:
		return fmt.Errorf("unknown command %d", command)
	}
	return nil
}

// OpenFile loads path into the editor and reports whether it could be read.
func (c *Commander) OpenFile(path string) bool {
	if err := c.editor.ReadFile(path); err != nil {
		return false
	}
	c.message = "opened " + path
	return true
}

// SaveFile writes the editor contents to path and reports whether it succeeded.
func (c *Commander) SaveFile(path string) bool {
	if err := c.editor.WriteFile(path); err != nil {
		return false
	}
	c.message = "saved " + path
	return true
}

func (c *Commander) processKey(event *meow.Event) error {
	c.message = ""
	if command, ok := Resolve(event.Chord()); ok {
		return c.Dispatch(command)
	}
	// unmapped chords are not typing
	if event.Mod != meow.ModNone {
		return nil
	}

	b := c.editor.GetBuffer()
	if event.Key != meow.KeyUnsupported {
		switch event.Key {
		case meow.KeyEnter:
			b.InsertAtCursor("\n")
		case meow.KeyTab:
			b.InsertAtCursor("\t")
		case meow.KeySpace:
			b.InsertAtCursor(" ")
		case meow.KeyBackspace:
			b.Backspace()
		case meow.KeyDelete:
			b.DeleteForward()
		case meow.KeyArrowUp:
			b.MoveUp(1)
		case meow.KeyArrowDown:
			b.MoveDown(1)
		case meow.KeyArrowLeft:
			b.MoveLeft()
		case meow.KeyArrowRight:
			b.MoveRight()
		case meow.KeyHome:
			b.MoveLineStart()
		case meow.KeyEnd:
			b.MoveLineEnd()
		case meow.KeyPgup:
			b.MoveUp(c.pageRows)
		case meow.KeyPgdn:
			b.MoveDown(c.pageRows)
		}
		return nil
	}
	if event.Ch != 0 {
		b.InsertAtCursor(string(event.Ch))
	}
	return nil
}

// Mouse events carry document coordinates: X is the column and Y the row.
func (c *Commander) processMouse(event *meow.Event) error {
	if event.Key != meow.MouseLeft {
		return nil
	}
	b := c.editor.GetBuffer()
	b.SetCursor(b.Offset(meow.Point{Row: event.Y, Col: event.X}))
	return nil
}
