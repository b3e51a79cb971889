package terminal

import (
	"fmt"
	"io"
	"os"
)

// Reset clears video attributes.
const Reset = "\033[0m"

// uiOut is stderr since stdout carries the selection.
var uiOut io.Writer = os.Stderr

// Error prints a fatal diagnostic.
func Error(err error) {
	fmt.Fprintf(uiOut, "Error: %v\n", err)
}
