package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/hostpage/pkg/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if short {
				return cliWriteLine(cmd.OutOrStdout(), version.Version())
			}
			return cliWriteLine(cmd.OutOrStdout(), version.Get().String())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")

	return cmd
}
