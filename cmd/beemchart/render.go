package main

import (
	"github.com/spf13/cobra"

	"github.com/awantoch/beemchart/constants"
	"github.com/awantoch/beemchart/export"
	"github.com/awantoch/beemchart/utils"
)

// newRenderCmd creates the 'render' subcommand.
func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   constants.CmdRender + " <doc>",
		Short: constants.DescRender,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, _, ok := loadOrExit(args[0])
			if !ok {
				return
			}
			utils.User("%s", c.Render())
		},
	}
}

// newSaveCmd creates the 'save' subcommand.
func newSaveCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   constants.CmdSave + " <doc>",
		Short: constants.DescSave,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, _, ok := loadOrExit(args[0])
			if !ok {
				return
			}
			path, err := export.SaveChart(c, outputName(args[0], out))
			if err != nil {
				utils.Error("Failed to save chart: %v", err)
				exit(1)
				return
			}
			utils.User(constants.MsgSaved, path)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (\".mmd\" is added if missing)")
	return cmd
}

// newHTMLCmd creates the 'html' subcommand.
func newHTMLCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   constants.CmdHTML + " <doc>",
		Short: constants.DescHTML,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, doc, ok := loadOrExit(args[0])
			if !ok {
				return
			}
			path, err := export.SaveHTML(c, outputName(args[0], out), export.WithTitle(doc.Title))
			if err != nil {
				utils.Error("Failed to write preview: %v", err)
				exit(1)
				return
			}
			utils.User(constants.MsgSaved, path)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (\".html\" is added if missing)")
	return cmd
}
