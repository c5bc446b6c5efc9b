package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintab/deskstate/internal/store"
	"github.com/fintab/deskstate/internal/workspace"
)

// readSource reads a workspace payload from a file path, or from stdin
// when path is "-".
func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// loadDocument reads and parses a workspace document, reporting failures
// through the formatter and returning a coded ExitError. Parse and schema
// failures are validation failures (exit 1); unreadable files are command
// errors (exit 2).
func loadDocument(f *OutputFormatter, cmd *cobra.Command, path string) (*workspace.Document, error) {
	data, err := readSource(cmd, path)
	if err != nil {
		msg := fmt.Sprintf("cannot read workspace file: %v", err)
		f.Error(ErrCodeNotFound, msg, nil)
		return nil, WrapExitError(ExitCommandError, msg, err)
	}

	doc, err := workspace.ParseDocument(data)
	if err != nil {
		var docErr *workspace.DocumentError
		if errors.As(err, &docErr) {
			code := ErrCodeParse
			if docErr.Code == workspace.ErrCodeSchema {
				code = ErrCodeSchema
			}
			f.Error(code, docErr.Message, nil)
			return nil, WrapExitError(ExitFailure, docErr.Message, err)
		}
		f.Error(ErrCodeGeneric, err.Error(), nil)
		return nil, WrapExitError(ExitFailure, err.Error(), err)
	}
	return doc, nil
}

// openStore opens the snapshot database, reporting failures through the
// formatter.
func openStore(f *OutputFormatter, dbPath string) (*store.Store, error) {
	s, err := store.Open(dbPath)
	if err != nil {
		msg := fmt.Sprintf("cannot open database %s: %v", dbPath, err)
		f.Error(ErrCodeStore, msg, nil)
		return nil, WrapExitError(ExitCommandError, msg, err)
	}
	return s, nil
}
