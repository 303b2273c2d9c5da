package agent

import (
	"fmt"
	"io"
	"strings"

	"connect4/game"
)

// RenderBoard writes the position one bracketed row per line, top row
// first. Cells show the first rune of their token, or a space when
// vacant.
func RenderBoard(out io.Writer, view game.StateView) {
	for row := 0; row < view.Rows; row++ {
		glyphs := make([]string, view.Columns)
		for col := 0; col < view.Columns; col++ {
			glyphs[col] = glyph(view.At(row, col))
		}
		fmt.Fprintf(out, "[%s]\n", strings.Join(glyphs, ","))
	}
}

func glyph(token game.Token) string {
	if token == game.Empty {
		return " "
	}
	return string([]rune(string(token))[0])
}
