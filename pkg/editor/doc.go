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

// Package editor implements the editing session of meowcode.
// An editor owns the document buffer and remembers the last file that
// was opened, which is offered again when saving. Reading and writing
// files goes through a FileIO so that sessions can be tested without disks.
// Failed reads and writes are logged here; callers decide whether to
// report them any further.
package editor
