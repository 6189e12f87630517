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
	"github.com/mattn/go-runewidth"
)

// cellWidth is the number of screen cells r takes when drawn at column x.
func cellWidth(r rune, x, tabWidth int) int {
	if r == '\t' {
		return tabWidth - x%tabWidth
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// displayColumn is the screen column where the rune at index starts.
func displayColumn(line []rune, index, tabWidth int) int {
	x := 0
	for i := 0; i < index && i < len(line); i++ {
		x += cellWidth(line[i], x, tabWidth)
	}
	return x
}

// indexAtColumn is the rune index drawn at a screen column.
// Columns past the end of the line give the line length.
func indexAtColumn(line []rune, column, tabWidth int) int {
	x := 0
	for i, r := range line {
		x += cellWidth(r, x, tabWidth)
		if column < x {
			return i
		}
	}
	return len(line)
}

// stringWidth is the number of cells s takes when drawn from column 0.
func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}
