package main

import (
	"os"

	"github.com/chronos-tachyon/huffile/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stderr))
}
