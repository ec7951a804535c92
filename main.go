package main

import (
	"github.com/notargets/noh/cmd"
)

func main() {
	cmd.Execute()
}
