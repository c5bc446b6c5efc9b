package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/fintab/deskstate/internal/sanitize"
	"github.com/fintab/deskstate/internal/value"
)

// TabReport describes the sanitization outcome for one tab of a
// validated document.
type TabReport struct {
	Tab      string   `json:"tab"`
	Survived bool     `json:"survived"`
	Kept     []string `json:"kept,omitempty"`
	Dropped  []string `json:"dropped,omitempty"`
}

// ValidationResult holds validation results for a workspace document.
type ValidationResult struct {
	Valid bool        `json:"valid"`
	Name  string      `json:"name"`
	Tabs  []TabReport `json:"tabs"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <workspace-file>",
		Short: "Validate a workspace document without importing it",
		Long: `Validate a workspace document and report what sanitization would keep.

Checks the document against the schema, then dry-runs the sanitizer and
reports, per tab, which keys survive and which are dropped. Nothing is
written.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	doc, err := loadDocument(formatter, cmd, path)
	if err != nil {
		return err
	}
	formatter.VerboseLog("document %q: %d candidate tab(s)", doc.Name, len(doc.Tabs))

	result := ValidationResult{
		Valid: true,
		Name:  doc.Name,
		Tabs:  make([]TabReport, 0, len(doc.Tabs)),
	}
	for _, tabID := range doc.Tabs.SortedKeys() {
		result.Tabs = append(result.Tabs, reportTab(tabID, doc.Tabs[tabID]))
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "document %q is valid\n", result.Name)
	for _, report := range result.Tabs {
		if !report.Survived {
			fmt.Fprintf(formatter.Writer, "  %s: dropped entirely\n", report.Tab)
			continue
		}
		fmt.Fprintf(formatter.Writer, "  %s: keeps %v", report.Tab, report.Kept)
		if len(report.Dropped) > 0 {
			fmt.Fprintf(formatter.Writer, ", drops %v", report.Dropped)
		}
		fmt.Fprintln(formatter.Writer)
	}
	return nil
}

// reportTab dry-runs the tab sanitizer and diffs candidate keys against
// surviving ones.
func reportTab(tabID string, candidate value.Value) TabReport {
	report := TabReport{Tab: tabID}

	cleaned, ok := sanitize.Tab(tabID, candidate)
	if !ok {
		if obj, isObj := candidate.(value.Object); isObj {
			report.Dropped = obj.SortedKeys()
		}
		return report
	}

	report.Survived = true
	report.Kept = cleaned.SortedKeys()
	if obj, isObj := candidate.(value.Object); isObj {
		for _, key := range obj.SortedKeys() {
			if !slices.Contains(report.Kept, key) {
				report.Dropped = append(report.Dropped, key)
			}
		}
	}
	return report
}
