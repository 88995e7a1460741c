package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	config "github.com/nivschuman/FixedBytesSQL/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "fixedbytes",
	Short: "Store fixed-length identifiers in SQLite, MySQL and PostgreSQL",
	Long: `fixedbytes encodes and decodes 20 byte identifiers for the column
encoding each database uses, and checks round trips against a live database.`,
	SilenceUsage: true,
}

func main() {
	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentFlags().StringP("backend", "b", "sqlite", "Database backend: sqlite, mysql or postgres")
	rootCmd.PersistentFlags().StringP("column-type", "t", "", "Declared SQL type of the identifier column")

	rootCmd.AddCommand(encodeCmd, decodeCmd, roundtripCmd)
}

// loadConfig reads CONFIG_FILE, or config/config.yml, falling back to defaults when neither exists.
func loadConfig() (*config.Config, error) {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config/config.yml"
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		glog.Infof("|Main| Config file %s not found, using defaults", configFile)
		cfg := config.DefaultConfig()
		cfg.DatabaseConfig.ApplyEnvironment()
		return cfg, nil
	}

	if err := config.InitializeGlobalConfig(configFile); err != nil {
		return nil, err
	}

	return config.GlobalConfig, nil
}
