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
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meownix/meowcode/pkg/fileio"
)

type memoryClipboard struct {
	text string
	err  error
}

func (c *memoryClipboard) ReadAll() (string, error) {
	return c.text, c.err
}

func (c *memoryClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func setup(t *testing.T, name, content string) (*Editor, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return NewEditor(nil), path
}

func TestOpenReplacesBufferAndTracksPath(t *testing.T) {
	editor, path := setup(t, "a.txt", "hello")
	if err := editor.ReadFile(path); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if text := editor.GetBuffer().Text(); text != "hello" {
		t.Errorf("Unexpected buffer: '%s'", text)
	}
	if last, ok := editor.LastOpened(); !ok || last != path {
		t.Errorf("Unexpected last opened path: '%s' %v", last, ok)
	}
}

func TestOpenMissingFileLeavesBufferUnchanged(t *testing.T) {
	editor, path := setup(t, "a.txt", "hello")
	editor.ReadFile(path)
	editor.GetBuffer().InsertAtCursor("say ")
	before := editor.GetBuffer().Text()

	missing := filepath.Join(filepath.Dir(path), "missing.txt")
	err := editor.ReadFile(missing)
	var readErr *fileio.ReadError
	if !errors.As(err, &readErr) {
		t.Errorf("Expected a ReadError, got %+v", err)
	}
	if text := editor.GetBuffer().Text(); text != before {
		t.Errorf("Buffer changed by failed open: '%s'", text)
	}
	if last, _ := editor.LastOpened(); last != path {
		t.Errorf("Failed open changed last opened path to '%s'", last)
	}
}

func TestOpenRejectsInvalidUTF8(t *testing.T) {
	editor, path := setup(t, "a.txt", "hello")
	editor.ReadFile(path)

	latin1 := filepath.Join(filepath.Dir(path), "latin1.txt")
	if err := os.WriteFile(latin1, []byte("caf\xe9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	err := editor.ReadFile(latin1)
	var readErr *fileio.ReadError
	if !errors.As(err, &readErr) || !errors.Is(err, fileio.ErrNotText) {
		t.Errorf("Expected a ReadError for invalid UTF-8, got %+v", err)
	}
	if text := editor.GetBuffer().Text(); text != "hello" {
		t.Errorf("Buffer changed by rejected open: '%s'", text)
	}
	if last, _ := editor.LastOpened(); last != path {
		t.Errorf("Rejected open changed last opened path to '%s'", last)
	}

	// the file itself is never rewritten
	destination := filepath.Join(filepath.Dir(path), "b.txt")
	editor.WriteFile(destination)
	if b, _ := os.ReadFile(latin1); string(b) != "caf\xe9\n" {
		t.Errorf("Invalid UTF-8 file changed: %q", b)
	}
}

func TestOpenSaveKeepsBytes(t *testing.T) {
	content := "caf\u00e9\r\n\ttabs and \u4e16\u754c\n"
	editor, path := setup(t, "a.txt", content)
	if err := editor.ReadFile(path); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	destination := filepath.Join(filepath.Dir(path), "b.txt")
	if err := editor.WriteFile(destination); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	if b, _ := os.ReadFile(destination); string(b) != content {
		t.Errorf("Open and save changed bytes: in=%q out=%q", content, b)
	}
}

func TestSaveWritesBufferAndKeepsTracker(t *testing.T) {
	editor, path := setup(t, "a.txt", "hello")
	editor.ReadFile(path)
	editor.GetBuffer().SetText("world")

	destination := filepath.Join(filepath.Dir(path), "b.txt")
	if err := editor.WriteFile(destination); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	b, err := os.ReadFile(destination)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "world" {
		t.Errorf("Unexpected file contents: '%s'", b)
	}
	if last, _ := editor.LastOpened(); last != path {
		t.Errorf("Save changed last opened path to '%s'", last)
	}
}

func TestSaveWithoutOpenLeavesTrackerUnset(t *testing.T) {
	editor := NewEditor(nil)
	editor.GetBuffer().SetText("world")
	destination := filepath.Join(t.TempDir(), "b.txt")
	if err := editor.WriteFile(destination); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	if _, ok := editor.LastOpened(); ok {
		t.Errorf("Save set the last opened path")
	}
}

func TestSaveFailureReportsWriteError(t *testing.T) {
	editor := NewEditor(nil)
	editor.GetBuffer().SetText("world")
	err := editor.WriteFile(filepath.Join(t.TempDir(), "missing", "b.txt"))
	var writeErr *fileio.WriteError
	if !errors.As(err, &writeErr) {
		t.Errorf("Expected a WriteError, got %+v", err)
	}
	if text := editor.GetBuffer().Text(); text != "world" {
		t.Errorf("Failed save changed the buffer: '%s'", text)
	}
}

func TestTrackerReplacesPath(t *testing.T) {
	var tracker PathTracker
	if _, ok := tracker.Get(); ok {
		t.Errorf("New tracker should be empty")
	}
	tracker.Set("/tmp/a.txt")
	tracker.Set("/tmp/c.txt")
	if path, ok := tracker.Get(); !ok || path != "/tmp/c.txt" {
		t.Errorf("Unexpected tracked path: '%s' %v", path, ok)
	}
}

func TestCutCopyPaste(t *testing.T) {
	editor := NewEditor(nil)
	clip := &memoryClipboard{}
	editor.SetClipboard(clip)
	b := editor.GetBuffer()
	b.SetText("four score")
	b.Select(0, 4)
	if err := editor.Copy(); err != nil {
		t.Fatalf("Copy failed: %+v", err)
	}
	if clip.text != "four" {
		t.Errorf("Unexpected clipboard: '%s'", clip.text)
	}
	if err := editor.Cut(); err != nil {
		t.Fatalf("Cut failed: %+v", err)
	}
	if text := b.Text(); text != " score" {
		t.Errorf("Unexpected text after cut: '%s'", text)
	}
	b.SetCursor(b.End())
	if err := editor.Paste(); err != nil {
		t.Fatalf("Paste failed: %+v", err)
	}
	if text := b.Text(); text != " scorefour" {
		t.Errorf("Unexpected text after paste: '%s'", text)
	}
}

func TestCutKeepsTextWhenClipboardFails(t *testing.T) {
	editor := NewEditor(nil)
	editor.SetClipboard(&memoryClipboard{err: ErrClipboardUnsupported})
	b := editor.GetBuffer()
	b.SetText("four score")
	b.SelectAll()
	if err := editor.Cut(); !errors.Is(err, ErrClipboardUnsupported) {
		t.Errorf("Expected clipboard error, got %+v", err)
	}
	if text := b.Text(); text != "four score" {
		t.Errorf("Failed cut changed the buffer: '%s'", text)
	}
}

func TestClipboardMissingIsLogged(t *testing.T) {
	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	editor := NewEditor(nil)
	if err := editor.Paste(); !errors.Is(err, ErrNoClipboard) {
		t.Errorf("Expected ErrNoClipboard, got %+v", err)
	}
	if !strings.Contains(logged.String(), "paste: "+ErrNoClipboard.Error()) {
		t.Errorf("Paste without a clipboard was not logged: '%s'", logged.String())
	}
	logged.Reset()
	editor.GetBuffer().SetText("hello")
	editor.SelectAll()
	if err := editor.Cut(); !errors.Is(err, ErrNoClipboard) {
		t.Errorf("Expected ErrNoClipboard, got %+v", err)
	}
	if !strings.Contains(logged.String(), "copy: "+ErrNoClipboard.Error()) {
		t.Errorf("Cut without a clipboard was not logged: '%s'", logged.String())
	}
	if text := editor.GetBuffer().Text(); text != "hello" {
		t.Errorf("Cut without a clipboard changed the buffer: '%s'", text)
	}
}
