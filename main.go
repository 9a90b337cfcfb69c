// tombs is a terminal roguelike. Build:
//
//	go build -o tombs .
//
// Run "tombs" to play locally, "tombs serve" to host games over SSH.
package main

import "tombs/internal/cli"

func main() {
	cli.Execute()
}
