package main

import (
	"github.com/aerissecure/sheetjson/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	configPath  string
	logLevel    string
	emptyStreak int
	workers     int
)

var rootCmd = &cobra.Command{
	Use:           "sheetjson",
	Short:         "Convert XLSX workbooks into style-aware JSON",
	Version:       Version,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (env: SHEETJSON_LOG_LEVEL)")
	rootCmd.PersistentFlags().IntVar(&emptyStreak, "empty-streak", config.DefaultEmptyStreak, "Consecutive empty rows or cells kept before a sheet is cut off")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 1, "Sheets assembled concurrently")
}

// loadConfig reads --config and lets explicitly set flags win over the file
// and the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if changed(flags, "log-level") {
		cfg.Log.Level = logLevel
	}
	if changed(flags, "empty-streak") {
		cfg.Convert.EmptyStreak = emptyStreak
	}
	if changed(flags, "workers") {
		cfg.Convert.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func changed(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

func newLogger(cfg config.Config) *logrus.Logger {
	return cfg.NewLogger()
}

func Execute() error {
	return rootCmd.Execute()
}
