package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fintab/deskstate/internal/sanitize"
)

// NewTabsCommand creates the tabs command.
func NewTabsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "Print the tab allowlist table",
		Long: `Print the known tab identifiers and the state keys each may persist.

The table is fixed at build time; fields not listed here never survive
sanitization.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTabs(rootOpts, cmd)
		},
	}
	return cmd
}

func runTabs(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	if opts.Format == "json" {
		table := map[string][]string{}
		for _, tab := range sanitize.Tabs() {
			keys, _ := sanitize.Allowlist(tab)
			table[tab] = keys
		}
		return formatter.Success(table)
	}

	for _, tab := range sanitize.Tabs() {
		keys, _ := sanitize.Allowlist(tab)
		fmt.Fprintf(formatter.Writer, "%s: %s\n", tab, strings.Join(keys, ", "))
	}
	return nil
}
