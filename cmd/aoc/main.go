// aoc - Advent of Code 2022 puzzle solvers
//
// aoc reads plain-text puzzle inputs and prints the answers of each part.
package main

import (
	"os"

	"github.com/tduindam/aoc-2022/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
