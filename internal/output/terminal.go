package output

import (
	"os"

	"golang.org/x/term"
)

const DefaultConsoleWidth = 80

// ConsoleWidth reports the column count of the terminal attached to stdout,
// or DefaultConsoleWidth when stdout is not a terminal.
func ConsoleWidth() int {
	return widthOf(int(os.Stdout.Fd()))
}

func widthOf(fd int) int {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultConsoleWidth
	}
	return width
}
