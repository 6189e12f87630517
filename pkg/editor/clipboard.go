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

	"github.com/atotto/clipboard"
)

var ErrClipboardUnsupported = errors.New("no system clipboard available")

// SystemClipboard shares text through the desktop clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
