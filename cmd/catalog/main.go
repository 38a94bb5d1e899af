// Command catalog serves and manages the item catalog.
package main

import "github.com/mesh-intelligence/catalog/internal/cli"

func main() {
	cli.Execute()
}
