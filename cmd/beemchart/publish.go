package main

import (
	"github.com/spf13/cobra"

	"github.com/awantoch/beemchart/blob"
	"github.com/awantoch/beemchart/constants"
	"github.com/awantoch/beemchart/export"
	"github.com/awantoch/beemchart/utils"
)

// newPublishCmd creates the 'publish' subcommand.
func newPublishCmd() *cobra.Command {
	var (
		format string
		name   string
	)
	cmd := &cobra.Command{
		Use:   constants.CmdPublish + " <doc>",
		Short: constants.DescPublish,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			f, err := export.ParseFormat(format)
			if err != nil {
				utils.Error("%v", err)
				exit(1)
				return
			}
			c, doc, ok := loadOrExit(args[0])
			if !ok {
				return
			}
			ctx := cmd.Context()
			store, err := blob.New(ctx, &cfg.Blob)
			if err != nil {
				utils.Error("Failed to open blob store: %v", err)
				exit(1)
				return
			}
			url, err := export.Publish(ctx, store, c, name, f, export.WithTitle(doc.Title))
			if err != nil {
				utils.Error("Failed to publish chart: %v", err)
				exit(1)
				return
			}
			utils.User(constants.MsgPublished, url)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(export.FormatMermaid), "Output format: mmd or html")
	cmd.Flags().StringVar(&name, "name", "", "Blob name (generated when empty)")
	return cmd
}
