// Command enumstatus lists status declarations and drives the blog status
// example store.
package main

import "github.com/mesh-intelligence/enumstatus/internal/cli"

func main() {
	cli.Execute()
}
