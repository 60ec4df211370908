package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "Print a day's journal entry",
		Example: `
daybook get
daybook get 2025-08-03
daybook get --date 2025-08-03
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				do.Date = args[0]
			}
			s := get.Get{
				Date:    do.Date,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddDateArg(cmd, do)

	topLevel.AddCommand(cmd)
}
