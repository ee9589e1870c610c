package main

import (
	"os"

	"github.com/baaaaaaaka/clipse/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
