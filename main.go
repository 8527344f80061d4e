// The main package for the recruitscout executable.
package main

import (
	"github.com/recruitscout/recruitscout/cmd"
)

// main defers all execution to the Cobra CLI.
func main() {
	cmd.Execute()
}
