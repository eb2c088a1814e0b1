package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-uds/internal/script"
	"github.com/arloliu/go-uds/request"
)

type batchFlags struct {
	strict bool
}

func newBatchCmd() *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch <script.yaml>",
		Short: "Encode a YAML request script",
		Long: `Encode every request in a YAML script, one hex line per request in
script order. See the script package documentation for the schema.`,
		Example: `  udsgen batch flash-session.yaml
  udsgen batch read-idents.yaml --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Report parameters truncated by masking")

	return cmd
}

func runBatch(cmd *cobra.Command, path string, flags *batchFlags) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read request script: %w", err)
	}

	s, err := script.Parse(data)
	if err != nil {
		return err
	}

	encoded, err := s.Encode(request.New(request.WithStrict(flags.strict)))
	if err != nil {
		return err
	}

	for _, line := range encoded {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
