package main

import (
	"os"

	"github.com/viant/grocery/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
