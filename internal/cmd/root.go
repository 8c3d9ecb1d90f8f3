package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sumantkashyav/Log-Analysis-Script/internal/config"
)

var cfgFile string

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "loganalysis",
	Short: "Loganalysis — batch log file analyzer",
	Long: `Loganalysis reads plain-text log files from an input directory, parses each
line against the fixed format "[YYYY-MM-DD HH:MM:SS] LEVEL: message", computes
aggregate statistics, and writes deterministic CSV or text reports.`,
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

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./.loganalysis.yaml)")
	rootCmd.PersistentFlags().StringP("input", "i", "data/", "input directory (or single log file)")
	rootCmd.PersistentFlags().StringP("output", "o", "results/", "output directory for report files")
	rootCmd.PersistentFlags().StringP("format", "f", "csv", "report format: csv, text")
	rootCmd.PersistentFlags().StringSliceP("entity", "e", nil, "entity keys to extract and count from messages (e.g. UserID)")
	rootCmd.PersistentFlags().IntP("threshold", "t", 0, "flag entity values with more than this many ERROR records")
	rootCmd.PersistentFlags().BoolP("recursive", "r", false, "also scan subdirectories of the input directory")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress the terminal summary")
	rootCmd.PersistentFlags().String("log-file", "", "also write diagnostics to this rotating log file")

	viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("entities", rootCmd.PersistentFlags().Lookup("entity"))
	viper.BindPFlag("threshold", rootCmd.PersistentFlags().Lookup("threshold"))
	viper.BindPFlag("recursive", rootCmd.PersistentFlags().Lookup("recursive"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".loganalysis")
		viper.SetConfigType("yaml")
	}

	config.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix("LOGANALYSIS")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
