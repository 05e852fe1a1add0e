// Command holonet is a terminal explorer for the Star Wars API.
package main

import "github.com/papapumpkin/holonet/cmd"

func main() {
	cmd.Execute()
}
