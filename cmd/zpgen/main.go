package main

import (
	"github.com/zshkit/zpgen/internal/cli"
)

func main() {
	// Execute the root command
	cli.Execute()
}
