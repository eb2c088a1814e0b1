package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-uds/uds"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <sid|nrc|did>",
		Short: "Print an identifier catalog",
		Long: `Print one of the identifier catalogs: service identifiers (sid),
negative response codes (nrc), or the registered data identifier names (did).`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"sid", "nrc", "did"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "sid":
				listSIDs(cmd)
			case "nrc":
				listNRCs(cmd)
			case "did":
				listDIDs(cmd)
			default:
				return fmt.Errorf("unknown catalog %q, expected sid, nrc or did", args[0])
			}
			return nil
		},
	}

	return cmd
}

func listSIDs(cmd *cobra.Command) {
	for _, sid := range uds.SIDValues() {
		fmt.Fprintf(cmd.OutOrStdout(), "0x%02X  %-6s %s\n", byte(sid), sid.Alias(), sid.String())
	}
}

func listNRCs(cmd *cobra.Command) {
	for _, code := range uds.NRCValues() {
		fmt.Fprintf(cmd.OutOrStdout(), "0x%02X  %s\n", byte(code), code.String())
	}
}

func listDIDs(cmd *cobra.Command) {
	type entry struct {
		did  uint16
		name string
	}
	var entries []entry
	uds.DataIdentifierEntries(func(did uint16, name string) bool {
		entries = append(entries, entry{did: did, name: name})
		return true
	})
	slices.SortFunc(entries, func(a, b entry) int {
		return int(a.did) - int(b.did)
	})
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "0x%04X  %s\n", e.did, e.name)
	}
}
