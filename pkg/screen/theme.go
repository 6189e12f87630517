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

package screen

import (
	"github.com/nsf/termbox-go"

	"github.com/meownix/meowcode/pkg/config"
)

var colors = map[string]termbox.Attribute{
	"default": termbox.ColorDefault,
	"black":   termbox.ColorBlack,
	"red":     termbox.ColorRed,
	"green":   termbox.ColorGreen,
	"yellow":  termbox.ColorYellow,
	"blue":    termbox.ColorBlue,
	"magenta": termbox.ColorMagenta,
	"cyan":    termbox.ColorCyan,
	"white":   termbox.ColorWhite,
}

type theme struct {
	fg, bg         termbox.Attribute
	menuFg, menuBg termbox.Attribute
	selFg, selBg   termbox.Attribute
}

func color(name string) termbox.Attribute {
	if c, ok := colors[name]; ok {
		return c
	}
	return termbox.ColorDefault
}

func newTheme(t config.Theme) theme {
	return theme{
		fg:     color(t.Foreground),
		bg:     color(t.Background),
		menuFg: color(t.MenuForeground),
		menuBg: color(t.MenuBackground),
		selFg:  color(t.SelectionForeground),
		selBg:  color(t.SelectionBackground),
	}
}
