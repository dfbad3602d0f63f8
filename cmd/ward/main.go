package main

import (
	"os"

	"github.com/dshills/ward/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
