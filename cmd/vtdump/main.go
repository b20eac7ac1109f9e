// Command vtdump feeds stdin through a vtcore.Terminal and prints the
// resulting grid, one line per row, followed by the cursor position.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rowcol/vtcore"
)

func main() {
	cols := flag.Int("cols", 80, "terminal width")
	rows := flag.Int("rows", 24, "terminal height")
	flag.Parse()

	term, err := vtcore.New(vtcore.WithSize(*cols, *rows))
	if err != nil {
		fmt.Fprintln(os.Stderr, "vtdump:", err)
		os.Exit(1)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vtdump:", err)
		os.Exit(1)
	}
	term.Feed(string(data))

	for row := 0; row < term.Rows(); row++ {
		fmt.Println(term.RowText(row))
	}

	cursorRow, cursorCol := term.CursorPos()
	fmt.Fprintf(os.Stderr, "cursor: row=%d col=%d visible=%v alt=%v\n",
		cursorRow, cursorCol, term.CursorVisible(), term.IsAlternateScreen())
}
