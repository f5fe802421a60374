package main

import (
	"os"

	"lmnode/internal/cli"
)

func main() { os.Exit(cli.Main()) }
