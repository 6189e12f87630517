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

// A PathTracker remembers the most recently opened file.
// It is replaced by every successful open and never cleared.
type PathTracker struct {
	path string
	set  bool
}

func (t *PathTracker) Get() (string, bool) {
	return t.path, t.set
}

func (t *PathTracker) Set(path string) {
	t.path = path
	t.set = true
}
