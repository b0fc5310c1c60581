// bricker is a brick-breaking arcade game for the terminal.
//
// Usage:
//
//	bricker [bricks-per-row [rows]]
//
// The grid defaults to 8 bricks per row and 7 rows. Everything else is read
// from bricker.yaml ($BRICKER_CONFIG, ~/.bricker/configs, ./configs).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
