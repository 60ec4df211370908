package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/configure"
	"tableflip.dev/daybook/pkg/store"
)

func addConfigure(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Set the wiki address and credentials",
		Example: `
daybook configure
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			c := configure.Configure{Config: cfg}
			return c.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
