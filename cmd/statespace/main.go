// Command statespace solves and maps the bundled search problems.
//
//	statespace solve   --problem waterjug --strategy bfs
//	statespace graph   --problem nqueens --format dot --overlay best-first
//	statespace compare --problem tilepuzzle
//
// Settings come from Default, then the --config YAML file, then flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "statespace:", err)
		os.Exit(1)
	}
}
