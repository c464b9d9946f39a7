package main

import (
	"os"

	"linguaspark/internal/cli"
)

func main() { os.Exit(cli.Main()) }
