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
package main

import (
	"os"
	"path/filepath"
	"testing"
)

const gettysburg = "THE GETTYSBURG ADDRESS:\n\nFour score and seven years ago our fathers brought forth on this\ncontinent a new nation, conceived in liberty and dedicated to the\nproposition that all men are created equal.\n"

type fixture struct {
	dir    string
	source string
	config string
}

func setup(t *testing.T) *fixture {
	dir := t.TempDir()
	f := &fixture{
		dir:    dir,
		source: filepath.Join(dir, "gettysburg-address.txt"),
		config: filepath.Join(dir, "missing.toml"),
	}
	if err := os.WriteFile(f.source, []byte(gettysburg), 0644); err != nil {
		t.Fatal(err)
	}
	return f
}

func (f *fixture) script(t *testing.T, source string) string {
	path := filepath.Join(f.dir, "script.lsp")
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func final(t *testing.T, path, expected string) {
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if string(data) != expected {
		t.Errorf("Unexpected contents of %s: '%s'", path, data)
	}
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	f := setup(t)
	target := filepath.Join(f.dir, "test-final.txt")
	script := f.script(t, `(save "`+target+`")`)
	if code := run([]string{"--config", f.config, "--eval", script, f.source}); code != 0 {
		t.Fatalf("Script failed with status %d", code)
	}
	final(t, target, gettysburg)
}

func TestScriptEditsOpenedFile(t *testing.T) {
	f := setup(t)
	script := f.script(t, `(select-all) (insert "four score") (save "`+f.source+`")`)
	if code := run([]string{"--config", f.config, "--eval", script, f.source}); code != 0 {
		t.Fatalf("Script failed with status %d", code)
	}
	final(t, f.source, "four score")
}

func TestScriptFailure(t *testing.T) {
	f := setup(t)
	script := f.script(t, `(open 42)`)
	if code := run([]string{"--config", f.config, "--eval", script}); code != 1 {
		t.Errorf("Expected status 1, got %d", code)
	}
	if code := run([]string{"--config", f.config, "--eval", filepath.Join(f.dir, "missing.lsp")}); code != 1 {
		t.Errorf("Expected status 1 for a missing script, got %d", code)
	}
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--eval"},
		{"--config"},
		{"a.txt", "b.txt"},
	} {
		if code := run(args); code != 2 {
			t.Errorf("Arguments %v gave status %d", args, code)
		}
	}
}
