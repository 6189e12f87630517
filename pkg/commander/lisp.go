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
	"os"
	"sync"

	"github.com/steelseries/golisp"

	meow "github.com/meownix/meowcode/pkg/types"
)

var (
	registerPrimitives sync.Once
	// golisp primitives are global, so they act on the commander that is
	// currently evaluating. It is only set inside ParseEval.
	active *Commander
)

var errNotEvaluating = errors.New("editor primitives can only be called from a commander")

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

func register() {
	golisp.MakePrimitiveFunction("open", "0|1", openImpl)
	golisp.MakePrimitiveFunction("save", "0|1", saveImpl)
	for _, command := range []meow.Command{
		meow.CommandQuit,
		meow.CommandSelectAll,
		meow.CommandAbout,
		meow.CommandMenu,
		meow.CommandCopy,
		meow.CommandCut,
		meow.CommandPaste,
	} {
		golisp.MakePrimitiveFunction(command.String(), "0", commandImpl(command))
	}
	golisp.MakePrimitiveFunction("insert", "1", insertImpl)
	golisp.MakePrimitiveFunction("text", "0", textImpl)
	golisp.MakePrimitiveFunction("selection", "0", selectionImpl)
	golisp.MakePrimitiveFunction("last-opened", "0", lastOpenedImpl)
}

// ParseEval evaluates lisp source against this commander and returns the printed value of the last expression.
func (c *Commander) ParseEval(source string) (string, error) {
	registerPrimitives.Do(register)
	previous := active
	active = c
	defer func() { active = previous }()

	value, err := golisp.ParseAndEvalAll(source)
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

// ParseEvalFile evaluates a lisp script.
func (c *Commander) ParseEvalFile(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return c.ParseEval(string(source))
}

func activeCommander() (*Commander, error) {
	if active == nil {
		return nil, errNotEvaluating
	}
	return active, nil
}

func stringArgument(name string, args *golisp.Data) (string, error) {
	value := golisp.Car(args)
	if !golisp.StringP(value) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(value), nil
}

func commandImpl(command meow.Command) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		c, err := activeCommander()
		if err != nil {
			return nil, err
		}
		if err := c.Dispatch(command); err != nil {
			return nil, err
		}
		return golisp.BooleanWithValue(true), nil
	}
}

// (open) prompts for a file; (open "path") reads path directly and returns whether it could.
func openImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if golisp.NilP(args) {
		return commandImpl(meow.CommandOpen)(args, env)
	}
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	path, err := stringArgument("open", args)
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.OpenFile(path)), nil
}

// (save) prompts for a file; (save "path") writes path directly and returns whether it could.
func saveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if golisp.NilP(args) {
		return commandImpl(meow.CommandSave)(args, env)
	}
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	path, err := stringArgument("save", args)
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.SaveFile(path)), nil
}

func insertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	text, err := stringArgument("insert", args)
	if err != nil {
		return nil, err
	}
	c.editor.GetBuffer().InsertAtCursor(text)
	return golisp.StringWithValue(text), nil
}

func textImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.editor.GetBuffer().Text()), nil
}

func selectionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.editor.GetBuffer().SelectedText()), nil
}

func lastOpenedImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	if path, ok := c.editor.LastOpened(); ok {
		return golisp.StringWithValue(path), nil
	}
	// nil is the empty list, printed as ()
	return nil, nil
}
