package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dadrus/gjallar/cmd/flags"
	"github.com/dadrus/gjallar/cmd/validate"
)

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Commands for validating gjallar's configuration",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(cmd.UsageString())
		},
	}

	flags.RegisterGlobalFlags(cmd)
	cmd.AddCommand(validate.NewValidateConfigCommand())

	return cmd
}
