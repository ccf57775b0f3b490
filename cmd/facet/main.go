package main

import (
	"os"

	"github.com/facet-dev/facet/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
