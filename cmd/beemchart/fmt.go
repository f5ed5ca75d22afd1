package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/awantoch/beemchart/constants"
	"github.com/awantoch/beemchart/utils"
)

// newFmtCmd creates the 'fmt' subcommand for normalizing chart documents.
func newFmtCmd() *cobra.Command {
	var inPlace bool

	cmd := &cobra.Command{
		Use:   constants.CmdFmt + " <doc>",
		Short: constants.DescFmt,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			_, doc, ok := loadOrExit(args[0])
			if !ok {
				return
			}
			formatted, err := doc.Marshal()
			if err != nil {
				utils.Error("Formatting failed: %v", err)
				exit(1)
				return
			}
			if inPlace {
				if err := os.WriteFile(args[0], formatted, constants.FilePermission); err != nil {
					utils.Error("Failed to write formatted file: %v", err)
					exit(1)
					return
				}
				utils.User("Formatted %s", args[0])
				return
			}
			utils.User("%s", formatted)
		},
	}

	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "Write result to file instead of stdout")
	return cmd
}
