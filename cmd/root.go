package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lc-pierce/discogs-metatagger/config"
)

var (
	cfgFile   string
	verbose   bool
	assumeYes bool

	cfg = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "discogs-metatagger",
	Short: "Batch FLAC/MP3 tagger with Discogs release lookup",
	Long: `discogs-metatagger edits the tags of a set of FLAC and MP3 files together
and can pre-fill album fields and track titles from a Discogs release.

Examples:
  discogs-metatagger show ./album/
  discogs-metatagger batch ./album/ --album "Whenever You Need Somebody" --number
  discogs-metatagger fetch https://www.discogs.com/release/249504 ./album/ --apply
  discogs-metatagger tui`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.discogs-metatagger.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to every confirmation")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	loaded, err := config.LoadConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	if err := config.ValidateConfig(loaded); err != nil {
		logrus.Fatal(err)
	}
	cfg = loaded

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.Debugf("Using config file: %s", viper.ConfigFileUsed())
	} else if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
}
