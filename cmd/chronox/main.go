package main

import (
	"os"
	_ "time/tzdata"

	"github.com/msto63/chronox/cmd/chronox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
