package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintab/deskstate/internal/store"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "delete <snapshot-name>",
		Short:         "Delete a stored snapshot",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], dbPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the snapshot database (required)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runDelete(opts *RootOptions, name, dbPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(formatter, dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteSnapshot(cmd.Context(), name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			msg := fmt.Sprintf("snapshot %q not found", name)
			formatter.Error(ErrCodeNotFound, msg, nil)
			return WrapExitError(ExitCommandError, msg, err)
		}
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "delete snapshot", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]any{"deleted": name})
	}
	return formatter.Success(fmt.Sprintf("deleted %q", name))
}
