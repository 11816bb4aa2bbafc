package main

import (
	"os"

	"github.com/arthur-debert/bmad-swarm/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
