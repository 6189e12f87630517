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

// Package native asks for paths with the desktop's file dialogs.
package native

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"

	meow "github.com/meownix/meowcode/pkg/types"
)

// Prompter shows native dialogs for files and the About box.
// The menu is left to the terminal prompter it wraps.
type Prompter struct {
	terminal meow.Prompter
}

func NewPrompter(terminal meow.Prompter) *Prompter {
	return &Prompter{terminal: terminal}
}

func (p *Prompter) OpenPath() (string, bool, error) {
	path, err := dialog.File().
		Title("Open File").
		Filter("All files", "*").
		Load()
	return result(path, err)
}

func (p *Prompter) SavePath(suggested string) (string, bool, error) {
	builder := dialog.File().
		Title("Save File").
		Filter("All files", "*")
	if suggested != "" {
		builder = builder.SetStartDir(filepath.Dir(suggested)).SetStartFile(filepath.Base(suggested))
	}
	return result(builder.Save())
}

func (p *Prompter) Menu() (meow.Command, bool, error) {
	return p.terminal.Menu()
}

func (p *Prompter) About(info meow.AboutInfo) error {
	dialog.Message("%s %s\n\n%s\n\n%s\n%s\n%s",
		info.Name, info.Version, info.Comments, info.Copyright, info.Website, info.License).
		Title("About " + info.Name).
		Info()
	return nil
}

// result maps a dialog outcome to the prompter convention.
func result(path string, err error) (string, bool, error) {
	if errors.Is(err, dialog.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "", false, nil
	}
	return filepath.Clean(path), true, nil
}
