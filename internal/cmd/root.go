package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// defaultSheetURL is the published CSV export of the guild's activity
// spreadsheet (MATRIZ tab).
const defaultSheetURL = "https://docs.google.com/spreadsheets/d/1syWgN3zKEb8CDbeitotYNCG1NIILsJR1zzO5i4WjyVo/gviz/tq?tqx=out:csv&sheet=MATRIZ"

var (
	cfgFile   string
	sheetURL  string
	csvGlob   string
	outputFmt string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "unfdash",
	Short: "UNF guild activity dashboard",
	Long: `unfdash serves the UNF guild activity dashboard: it loads the guild's
event log from a published spreadsheet (or a local CSV export), runs it
through the filter/aggregate/rank pipeline, and presents the results as
a live web dashboard or a one-shot terminal report.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.unfdashboard.yaml)")
	rootCmd.PersistentFlags().StringVar(&sheetURL, "sheet-url", "", "published CSV export URL of the activity spreadsheet")
	rootCmd.PersistentFlags().StringVar(&csvGlob, "csv", "", "read a local CSV export matching this glob instead of fetching")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format for stats: text, json")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".unfdashboard")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("unfdash")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// configured resolves a setting: explicit flag first, then config/env,
// then the built-in default.
func configured(flagVal, key, def string) string {
	if flagVal != "" {
		return flagVal
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return def
}
