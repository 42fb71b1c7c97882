// Command chronon converts, parses and formats epochs from the command line.
package main

import "github.com/chrisconley/chronon/cmd"

func main() {
	cmd.Execute()
}
