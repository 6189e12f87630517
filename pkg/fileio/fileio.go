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

// Package fileio moves whole documents between files and strings.
// Contents are copied byte for byte; nothing is reformatted on the way.
package fileio

import (
	"errors"
	"fmt"
	"os"
)

var ErrIsDirectory = errors.New("is a directory")

// ErrNotText reports contents that are not valid UTF-8.
var ErrNotText = errors.New("not valid UTF-8 text")

// A ReadError reports a file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// A WriteError reports a file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Disk reads and writes files in the local file system.
type Disk struct{}

func (Disk) Read(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &ReadError{Path: path, Err: ErrIsDirectory}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return string(b), nil
}

// Write creates or truncates the file at path and fills it with content.
func (Disk) Write(path string, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	_, err = f.WriteString(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
