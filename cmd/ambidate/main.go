package main

import (
	"fmt"
	"os"

	"github.com/ambidate/ambidate/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ambidate: %v\n", err)
		os.Exit(1)
	}
}
