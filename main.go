package main

import (
	"github.com/wtsang/ccdbgtraverse/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
