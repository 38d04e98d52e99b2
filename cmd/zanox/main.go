package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/zanox-client/cmd/zanox/commands"
	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "zanox",
	Short: "Zanox publisher API CLI",
	Long: `A command-line interface for the Zanox publisher API.

Browse programs, ad media, products and incentives, and inspect your
ad spaces, program applications and profile.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.zanox/config.yml)")
	rootCmd.PersistentFlags().String("connect-id", "", "connect ID (public account token)")
	rootCmd.PersistentFlags().String("secret-key", "", "secret key used to sign requests")
	rootCmd.PersistentFlags().String("base-url", "", "API root URL")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored log output")
	rootCmd.PersistentFlags().Bool("debug", false, "log HTTP requests and responses")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(commands.KeyConnectID, rootCmd.PersistentFlags().Lookup("connect-id"))
	_ = viper.BindPFlag(commands.KeySecretKey, rootCmd.PersistentFlags().Lookup("secret-key"))
	_ = viper.BindPFlag(commands.KeyBaseURL, rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag(commands.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag(commands.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(commands.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewProgramsCommand())
	rootCmd.AddCommand(commands.NewApplicationsCommand())
	rootCmd.AddCommand(commands.NewAdSpacesCommand())
	rootCmd.AddCommand(commands.NewAdMediaCommand())
	rootCmd.AddCommand(commands.NewProductsCommand())
	rootCmd.AddCommand(commands.NewIncentivesCommand())
	rootCmd.AddCommand(commands.NewProfilesCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.zanox/config.yml
		viper.AddConfigPath(filepath.Join(home, ".zanox"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// ZANOX_CONNECT_ID, ZANOX_SECRET_KEY, ...
	viper.SetEnvPrefix("ZANOX")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil && viper.GetBool("debug") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
