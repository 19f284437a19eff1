package main

import (
	"os"

	"github.com/dshills/prelint/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
