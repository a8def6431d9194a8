package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinfile/internal/app"
)

func (c *CLI) newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Render constraints files in canonical form",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			write, _ := cmd.Flags().GetBool("write")
			list, _ := cmd.Flags().GetBool("list")
			return c.app.Format(cmd.Context(), args, app.FormatOptions{
				Write:       write,
				ListChanged: list,
			})
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Rewrite files in place instead of printing to stdout")
	cmd.Flags().BoolP("list", "l", false, "List files whose formatting differs from the canonical form")
	return cmd
}
