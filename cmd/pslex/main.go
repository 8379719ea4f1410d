package main

import (
	"os"

	"github.com/ava12/pslex/cmd/pslex/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
