package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintab/deskstate/internal/sanitize"
	"github.com/fintab/deskstate/internal/value"
)

// NewSanitizeCommand creates the sanitize command.
func NewSanitizeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sanitize <workspace-file>",
		Short: "Sanitize a raw workspace state object",
		Long: `Sanitize a raw workspace JSON object and print the canonical result.

The input is the bare workspace mapping ({tabId: state, ...}), not a
versioned document; use "-" to read from stdin. Unknown tabs, disallowed
keys, unsafe values, and credential-like fields are silently dropped.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSanitize(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runSanitize(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	data, err := readSource(cmd, path)
	if err != nil {
		msg := fmt.Sprintf("cannot read workspace file: %v", err)
		formatter.Error(ErrCodeNotFound, msg, nil)
		return WrapExitError(ExitCommandError, msg, err)
	}

	input, err := value.FromJSON(data)
	if err != nil {
		formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitFailure, "invalid workspace JSON", err)
	}

	cleaned := sanitize.Workspace(input)
	formatter.VerboseLog("%d of %d tab(s) survived sanitization", len(cleaned), inputTabCount(input))

	out, err := value.MarshalCanonical(cleaned)
	if err != nil {
		// Sanitized output contains only serializable values; this is a
		// programming error if it ever fires
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "marshal sanitized workspace", err)
	}
	return formatter.SuccessRaw(out)
}

func inputTabCount(input value.Value) int {
	if obj, ok := input.(value.Object); ok {
		return len(obj)
	}
	return 0
}
