package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintab/deskstate/internal/sanitize"
)

// ImportResult is the success payload of the import command.
type ImportResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Tabs        int    `json:"tabs"`
	ContentHash string `json:"content_hash"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dbPath string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "import <workspace-file>",
		Short: "Import a workspace document into the snapshot store",
		Long: `Validate, sanitize, and persist a workspace document.

The document's tab state is untrusted: only allowlisted, safe fields
reach the database. Importing a document in which no tab survives
sanitization is refused.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], dbPath, name, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the snapshot database (required)")
	cmd.Flags().StringVar(&name, "name", "", "snapshot name (defaults to the document name)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runImport(opts *RootOptions, path, dbPath, nameOverride string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	doc, err := loadDocument(formatter, cmd, path)
	if err != nil {
		return err
	}

	name := doc.Name
	if nameOverride != "" {
		name = nameOverride
	}

	cleaned := sanitize.Workspace(doc.Tabs)
	formatter.VerboseLog("%d of %d tab(s) survived sanitization", len(cleaned), len(doc.Tabs))
	if len(cleaned) == 0 {
		msg := fmt.Sprintf("no tabs survived sanitization of %q; refusing to import an empty snapshot", name)
		formatter.Error(ErrCodeEmpty, msg, nil)
		return NewExitError(ExitFailure, msg)
	}

	s, err := openStore(formatter, dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	snap, err := s.SaveSnapshot(cmd.Context(), name, cleaned)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "save snapshot", err)
	}

	result := ImportResult{
		ID:          snap.ID,
		Name:        snap.Name,
		Tabs:        len(snap.Tabs),
		ContentHash: snap.ContentHash,
	}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("imported %q (%d tabs)", result.Name, result.Tabs))
}
