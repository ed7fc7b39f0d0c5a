package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lc-pierce/discogs-metatagger/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [directory]",
	Short: "Launch interactive terminal UI",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := cfg.DefaultDirectory
		if len(args) == 1 {
			dir = args[0]
		}
		if err := tui.Run(cfg, dir); err != nil {
			logrus.Fatalf("TUI exited with error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
