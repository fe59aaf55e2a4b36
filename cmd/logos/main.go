// Command logos is the thin binary wrapper over pkg/cli.
package main

import (
	"os"

	"github.com/logos-lang/logos/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
