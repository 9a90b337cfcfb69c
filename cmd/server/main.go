// tombs-server hosts tombs over SSH; every connection plays its own game.
// Build:
//
//	go build -o tombs-server ./cmd/server
//
// Usage:
//
//	./tombs-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -p 2222 localhost
package main

import "tombs/internal/cli"

func main() {
	cli.ExecuteServe()
}
