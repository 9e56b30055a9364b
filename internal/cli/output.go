package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// writeResult prints data as indented JSON or text as a line, per --format.
func writeResult(cmd *cobra.Command, format string, data any, text string) error {
	out := cmd.OutOrStdout()

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	_, err := fmt.Fprintln(out, text)
	return err
}
