package main

import (
	"fmt"
	"os"

	"github.com/mwaldren/relnotify/internal/cli"
	"github.com/mwaldren/relnotify/internal/security"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Errors can wrap transport failures that echo credential-bearing
		// URLs; mask before writing the diagnostic.
		fmt.Fprintln(os.Stderr, "Error:", security.SanitizeMessage(err.Error()))
		os.Exit(1)
	}
}
