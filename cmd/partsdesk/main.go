// Command partsdesk is the terminal front end of the parts inventory.
package main

import "github.com/mesh-intelligence/partsdesk/internal/cli"

func main() {
	cli.Execute()
}
