// cmd/main.go
package main

import cmd "github.com/mwiater/msprofstat/cmd/msprofstat"

// main starts the msprofstat CLI by delegating to the cobra root command
// defined in the msprofstat package.
func main() {
	cmd.Execute()
}
