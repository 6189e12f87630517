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
	"fmt"
	"log"
	"os"

	"github.com/meownix/meowcode/pkg/commander"
	"github.com/meownix/meowcode/pkg/config"
	"github.com/meownix/meowcode/pkg/editor"
	"github.com/meownix/meowcode/pkg/fileio"
	"github.com/meownix/meowcode/pkg/native"
	"github.com/meownix/meowcode/pkg/screen"
	meow "github.com/meownix/meowcode/pkg/types"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var filename, script, configPath string

	for i := 0; i < len(args); i++ {
		argi := args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(args) {
				script = args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return 2
			}
		case "--config":
			i++
			if i < len(args) {
				configPath = args[i]
			} else {
				log.Output(1, "No file specified for --config option")
				return 2
			}
		default:
			if filename != "" {
				log.Output(1, "Only one file can be edited at a time")
				return 2
			}
			filename = argi
		}
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("%v; using defaults", err)
		cfg = config.Default()
	}

	// The editor manages the document and its file.
	e := editor.NewEditor(fileio.Disk{})
	e.SetClipboard(editor.SystemClipboard{})

	if script != "" {
		return runScript(e, filename, script)
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}
	log.SetOutput(f)
	defer f.Close()

	// Create a screen to manage display.
	s, err := screen.NewScreen(cfg)
	if err != nil {
		log.Output(1, err.Error())
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.Close()

	var prompter meow.Prompter = s
	if cfg.NativeDialogs {
		prompter = native.NewPrompter(s)
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, prompter)
	s.Attach(e, c)

	if filename != "" {
		c.OpenFile(filename)
	}

	// Run the main event loop.
	for c.IsRunning() {
		s.Render()
		event, err := s.GetNextEvent()
		if err != nil {
			log.Output(1, err.Error())
			return 1
		}
		err = c.ProcessEvent(event)
		if err != nil {
			log.Output(1, err.Error())
		}
	}
	return 0
}

// runScript evaluates a script file without a screen and exits.
func runScript(e *editor.Editor, filename, script string) int {
	c := commander.NewCommander(e, nil)
	if filename != "" {
		c.OpenFile(filename)
	}
	result, err := c.ParseEvalFile(script)
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}
	if result != "" {
		fmt.Println(result)
	}
	return 0
}
