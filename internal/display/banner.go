package display

import (
	"fmt"
	"io"

	"github.com/backmassage/guessit/internal/term"
	"github.com/backmassage/guessit/internal/version"
)

// PrintBanner writes the ASCII art banner and version line to w in c.Magenta.
func PrintBanner(w io.Writer, c term.Colors) {
	fmt.Fprint(w, c.Magenta)
	fmt.Fprint(w, `  ____                     ___ _
 / ___|_   _  ___  ___ ___|_ _| |_
| |  _| | | |/ _ \/ __/ __|| || __|
| |_| | |_| |  __/\__ \__ \| || |_
 \____|\__,_|\___||___/___/___|\__|
`)
	fmt.Fprint(w, c.NC)
	fmt.Fprintln(w, version.String())
}
