package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/awantoch/beemchart/config"
	"github.com/awantoch/beemchart/constants"
	"github.com/awantoch/beemchart/utils"
)

var (
	exit       = os.Exit
	configPath string
	debug      bool
	cfg        *config.Config
)

// NewRootCmd creates the root 'beemchart' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "beemchart",
		Short:         constants.DescRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to beemchart config JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		loaded, err := config.Load(configPath)
		if err != nil {
			utils.Error("Failed to load config %s: %v", configPath, err)
			exit(1)
			return
		}
		cfg = loaded
		utils.SetLevel(cfg.Log.Level)
		if debug {
			utils.SetMode(constants.LogModeDebug)
		}
	}

	rootCmd.AddCommand(
		newRenderCmd(),
		newSaveCmd(),
		newHTMLCmd(),
		newPublishCmd(),
		newValidateCmd(),
		newFmtCmd(),
		newServeCmd(),
	)
	return rootCmd
}
