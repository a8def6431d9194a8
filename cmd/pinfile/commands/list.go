package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinfile/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "List the constraint entries of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			pkg, _ := cmd.Flags().GetString("package")
			return c.app.List(cmd.Context(), args[0], app.ListOptions{
				Output:  output,
				Package: pkg,
			})
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format: text or yaml")
	cmd.Flags().StringP("package", "p", "", "Show only entries for this package (any equivalent spelling)")
	return cmd
}
