package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/genhooks/cmd/genhooks"
	"github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/arthur-debert/genhooks/pkg/ui"
)

func main() {
	rootCmd := genhooks.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Validation diagnostics were already printed on stdout
		if !errors.IsValidation(err) {
			fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
