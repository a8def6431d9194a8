package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinfile/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [files...]",
		Short: "Re-check constraints files whenever they change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			strict, _ := cmd.Flags().GetBool("strict")
			return c.app.Watch(cmd.Context(), args, app.CheckOptions{
				Strict: strict,
			})
		},
	}
	cmd.Flags().BoolP("strict", "s", false, "Also report duplicate pins under the same environment marker")
	return cmd
}
