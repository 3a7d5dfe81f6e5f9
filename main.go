package main

import (
	"github.com/jjtimmons/strainsim/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
