package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Append a line to a day's entry",
		Example: `
daybook add picked up the keys
daybook add --date 2025-08-03 forgot to write this down
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Add{
				Date:    do.Date,
				Message: strings.Join(args, " "),
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddDateArg(cmd, do)

	topLevel.AddCommand(cmd)
}
