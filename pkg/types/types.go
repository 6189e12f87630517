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

// Editor modes
const (
	ModeEdit = 0
	ModeQuit = 9999
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// FileIO reads and writes whole files as text.
type FileIO interface {
	Read(path string) (string, error)
	Write(path string, content string) error
}

// Clipboard holds text shared with other programs.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// AboutInfo is shown by the About command.
type AboutInfo struct {
	Name      string
	Version   string
	Comments  string
	Copyright string
	Website   string
	License   string
}

// A Prompter runs the modal dialogs a command needs. Every method runs its
// dialog to completion before returning. A false ok means the user cancelled.
type Prompter interface {
	OpenPath() (path string, ok bool, err error)
	SavePath(suggested string) (path string, ok bool, err error)
	Menu() (command Command, ok bool, err error)
	About(info AboutInfo) error
}
