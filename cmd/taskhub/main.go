package main

import (
	"os"

	"github.com/sawamura/taskhub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
