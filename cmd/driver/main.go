package main

import (
	"os"

	"github.com/katalvlaran/lvdet/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
