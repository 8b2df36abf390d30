package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/chezconf/cmd/chezconf"
	"github.com/arthur-debert/chezconf/pkg/ui/display"
)

func main() {
	rootCmd := chezconf.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := display.NewRenderer(display.DetectColor(os.Stderr))
		fmt.Fprintln(os.Stderr, renderer.Error(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
