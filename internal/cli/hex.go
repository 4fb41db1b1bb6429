package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-utilskit/pkg/colorx"
)

func newHexCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "hex COLOR",
		Short:   "Normalize a #rrggbb color",
		Example: `  utilskit hex "#FFaa00"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := colorx.Normalize(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex)
			return nil
		},
	}
}
