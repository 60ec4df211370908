// Package options holds shared flag option structs for commands.
package options

import (
	"github.com/spf13/cobra"
)

// DateOptions selects the day a command operates on.
type DateOptions struct {
	Date string
}

func AddDateArg(cmd *cobra.Command, do *DateOptions) {
	cmd.Flags().StringVarP(&do.Date, "date", "d", "today",
		"Day to operate on, YYYY-MM-DD or 'today'.")
}
