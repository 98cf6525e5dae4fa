package main

import (
	"fmt"
	"os"

	"github.com/ouroboros-network/go-ouroboros/cmd/ouro/launcher"
)

func main() {
	if err := launcher.Launch(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
