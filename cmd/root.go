// Package cmd is for command line interactions with the traversal engine.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "ccdbgtraverse",
	Short: `Enumerate color-consistent, set-cover-guided contigs from a
colored compacted de Bruijn graph.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("settings", "s", "", "optional settings file (YAML)")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))

	cobra.OnInitialize(func() {
		if settings := viper.GetString("settings"); settings != "" {
			viper.SetConfigFile(settings)
			if err := viper.ReadInConfig(); err != nil {
				log.WithError(err).Fatal("failed to read settings file")
			}
		}
	})

	log.SetOutput(os.Stderr)
}
