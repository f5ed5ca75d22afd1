package main

import (
	"github.com/spf13/cobra"

	"github.com/awantoch/beemchart/constants"
	"github.com/awantoch/beemchart/utils"
)

// newValidateCmd creates the 'validate' subcommand.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   constants.CmdValidate + " <doc>",
		Short: constants.DescValidate,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if _, _, ok := loadOrExit(args[0]); !ok {
				return
			}
			utils.User(constants.MsgValidateOK)
		},
	}
}
