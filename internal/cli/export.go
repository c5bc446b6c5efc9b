package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintab/deskstate/internal/store"
	"github.com/fintab/deskstate/internal/workspace"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dbPath  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export <snapshot-name>",
		Short: "Export a snapshot as a workspace document",
		Long: `Export a stored snapshot as a version-1 workspace document.

The output is canonical JSON: exporting the same snapshot twice yields
byte-identical documents.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, args[0], dbPath, outPath, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the snapshot database (required)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the document to a file instead of stdout")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runExport(opts *RootOptions, name, dbPath, outPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(formatter, dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	snap, err := s.GetSnapshot(cmd.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			msg := fmt.Sprintf("snapshot %q not found", name)
			formatter.Error(ErrCodeNotFound, msg, nil)
			return WrapExitError(ExitCommandError, msg, err)
		}
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load snapshot", err)
	}

	doc := &workspace.Document{
		Version: workspace.DocumentVersion,
		Name:    snap.Name,
		Tabs:    snap.Tabs,
	}
	data, err := doc.MarshalCanonical()
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "marshal document", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
			msg := fmt.Sprintf("cannot write %s: %v", outPath, err)
			formatter.Error(ErrCodeGeneric, msg, nil)
			return WrapExitError(ExitCommandError, msg, err)
		}
		formatter.VerboseLog("wrote %d bytes to %s", len(data)+1, outPath)
		if opts.Format == "json" {
			return formatter.Success(map[string]any{"name": snap.Name, "output": outPath})
		}
		return formatter.Success(fmt.Sprintf("exported %q to %s", snap.Name, outPath))
	}

	return formatter.SuccessRaw(data)
}
