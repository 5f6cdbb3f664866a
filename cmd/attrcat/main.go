// attrcat re-encodes styled text for the terminal it is written to. Input
// may contain SGR escape sequences, which are decoded and written again with
// the colors and attributes the terminal supports
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
