package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinfile/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Parse constraints files and report malformed entries",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			strict, _ := cmd.Flags().GetBool("strict")
			return c.app.Check(cmd.Context(), args, app.CheckOptions{
				Strict: strict,
			})
		},
	}
	cmd.Flags().BoolP("strict", "s", false, "Also report duplicate pins under the same environment marker")
	return cmd
}
