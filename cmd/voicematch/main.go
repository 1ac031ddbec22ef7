// Command voicematch resolves spoken phrases against a catalog file from the
// command line, using the same resolver as the server.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errNoMatch signals exit status 1 without printing an error
var errNoMatch = errors.New("no match")

var rootCmd = &cobra.Command{
	Use:           "voicematch",
	Short:         "Resolve spoken product names against a catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(resolveCmd, normalizeCmd, similarityCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNoMatch) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
