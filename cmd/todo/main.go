package main

import (
	"context"
	"os"

	"github.com/idilsaglam/todo/internal/cli"
)

// Populated at build-time via -ldflags.
var version = "dev"

func main() {
	os.Exit(cli.Run(context.Background(), version, os.Args, os.Stdout, os.Stderr))
}
