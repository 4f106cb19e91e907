// Command lesionfront runs the front-propagation engine on synthetic volumes:
// region competition between two seeds over an intensity ramp, and
// majority-vote hole filling of a punched sphere.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
