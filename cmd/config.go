package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lc-pierce/discogs-metatagger/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.CreateDefaultConfig(); err != nil {
			logrus.Fatalf("Failed to create config: %v", err)
		}
		path, _ := config.GetConfigPath()
		logrus.Infof("Wrote default config to %s", path)
	},
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store the Discogs user token",
	Long: `Store the Discogs user token used for release lookups. Without an
argument the token is read from a hidden prompt.

Tokens are generated at https://www.discogs.com/settings/developers`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		token := ""
		if len(args) == 1 {
			token = args[0]
		} else if err := survey.AskOne(&survey.Password{Message: "Discogs user token:"}, &token); err != nil {
			logrus.Fatalf("Failed to read token: %v", err)
		}

		token = strings.TrimSpace(token)
		if token == "" {
			logrus.Fatal("Token must not be empty")
		}

		cfg.DiscogsToken = token
		if err := config.SaveConfig(cfg); err != nil {
			logrus.Fatalf("Failed to save config: %v", err)
		}
		logrus.Info("Discogs token saved")
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the configuration is saved",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.GetConfigPath()
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configSetTokenCmd, configPathCmd)
}
