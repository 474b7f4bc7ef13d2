// Package terminal answers the questions the text shell asks about where it
// is drawing: how wide the screen is and whether a person is on the other end.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal, e.g. a pipe or a test buffer.
const DefaultWidth = 80

// fileOf returns the file behind a reader or writer, if there is one
func fileOf(v any) (*os.File, bool) {
	f, ok := v.(*os.File)
	return f, ok && f != nil
}

// Width returns the column count of the terminal w writes to.
// Anything that is not a sized terminal gets DefaultWidth.
func Width(w io.Writer) int {
	f, ok := fileOf(w)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Interactive reports whether in and out are both attached to a terminal.
// Screen clearing only makes sense when they are.
func Interactive(in io.Reader, out io.Writer) bool {
	inFile, ok := fileOf(in)
	if !ok {
		return false
	}
	outFile, ok := fileOf(out)
	if !ok {
		return false
	}
	return term.IsTerminal(int(inFile.Fd())) && term.IsTerminal(int(outFile.Fd()))
}
