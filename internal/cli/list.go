package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// SnapshotListing is one row of the list command's JSON output.
type SnapshotListing struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Tabs      int       `json:"tabs"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List stored snapshots",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the snapshot database (required)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runList(opts *RootOptions, dbPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(formatter, dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	infos, err := s.ListSnapshots(cmd.Context())
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list snapshots", err)
	}

	if opts.Format == "json" {
		listings := make([]SnapshotListing, 0, len(infos))
		for _, info := range infos {
			listings = append(listings, SnapshotListing{
				ID:        info.ID,
				Name:      info.Name,
				Tabs:      info.TabCount,
				CreatedAt: info.CreatedAt,
				UpdatedAt: info.UpdatedAt,
			})
		}
		return formatter.Success(listings)
	}

	if len(infos) == 0 {
		fmt.Fprintln(formatter.Writer, "no snapshots")
		return nil
	}
	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "%s\t%d tab(s)\tupdated %s\n",
			info.Name, info.TabCount, info.UpdatedAt.Format(time.RFC3339))
	}
	return nil
}
