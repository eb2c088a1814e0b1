// udsgen encodes ISO 14229 (UDS) diagnostic requests from the command line
// or from YAML request scripts, and prints the identifier catalogs. It
// performs no transmission; every output is a hex token string.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "udsgen",
		Short: "UDS diagnostic request encoder",
		Long: `udsgen encodes ISO 14229 (UDS) diagnostic requests as space-separated
hexadecimal byte strings, ready to be pasted into a tester or test bench.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newListCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
