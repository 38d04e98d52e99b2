package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Configuration keys understood by 'config set'.
const (
	KeyConnectID = "connect_id"
	KeySecretKey = "secret_key"
	KeyBaseURL   = "base_url"
	KeyOutput    = "output"
	KeyPerPage   = "per_page"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Config represents the CLI configuration file.
type Config struct {
	ConnectID string `json:"connect_id,omitempty" yaml:"connect_id,omitempty"`
	SecretKey string `json:"secret_key,omitempty" yaml:"secret_key,omitempty"`
	BaseURL   string `json:"base_url,omitempty"   yaml:"base_url,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
	PerPage   int    `json:"per_page,omitempty"   yaml:"per_page,omitempty"`
	LogLevel  string `json:"log_level,omitempty"  yaml:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty"`
}

// Masked returns a copy safe to print.
func (c Config) Masked() Config {
	if c.SecretKey != "" {
		c.SecretKey = constants.MaskedSecret
	}

	return c
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the credentials and defaults stored in the Zanox CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the secret key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig().Masked()

			renderer := newRenderer(cmd.OutOrStdout(), displayConfigTable)

			return renderer.Render(config, viper.GetString("output"))
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY [VALUE]",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save it to the configuration file.

Keys: connect_id, secret_key, base_url, output, per_page, log_level, log_format.
When secret_key is given without a value it is read from the terminal.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			var value string

			switch {
			case len(args) == 2:
				value = args[1]
			case key == KeySecretKey:
				secret, err := readSecret(cmd.ErrOrStderr())
				if err != nil {
					return err
				}

				value = secret
			default:
				return fmt.Errorf("%w: %s requires a value", constants.ErrUnknownConfigKey, key)
			}

			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			path, err := saveConfig(config)
			if err != nil {
				return err
			}

			display := value
			if key == KeySecretKey {
				display = constants.MaskedSecret
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s in %s\n", key, display, path)

			return nil
		},
	}
}

// readSecret prompts for the secret key without echo.
func readSecret(prompt io.Writer) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) { //nolint:unconvert // syscall.Stdin is a Handle on windows
		return "", constants.ErrSecretNotReadable
	}

	_, _ = fmt.Fprint(prompt, "Secret key: ")

	bytePassword, err := term.ReadPassword(int(syscall.Stdin)) //nolint:unconvert // see above
	if err != nil {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	_, _ = fmt.Fprintln(prompt)

	return strings.TrimSpace(string(bytePassword)), nil
}

// loadConfig reads the effective configuration from viper, which merges
// flags, environment and the configuration file.
func loadConfig() *Config {
	return &Config{
		ConnectID: viper.GetString(KeyConnectID),
		SecretKey: viper.GetString(KeySecretKey),
		BaseURL:   viper.GetString(KeyBaseURL),
		Output:    viper.GetString(KeyOutput),
		PerPage:   viper.GetInt(KeyPerPage),
		LogLevel:  viper.GetString(KeyLogLevel),
		LogFormat: viper.GetString(KeyLogFormat),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case KeyConnectID:
		config.ConnectID = value
	case KeySecretKey:
		config.SecretKey = value
	case KeyBaseURL:
		config.BaseURL = value
	case KeyOutput:
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, value)
		}
	case KeyPerPage:
		perPage, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid per_page %q: %w", value, err)
		}

		config.PerPage = perPage
	case KeyLogLevel:
		config.LogLevel = value
	case KeyLogFormat:
		config.LogFormat = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

// configFilePath returns the file in use, or ~/.zanox/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".zanox", "config.yml"), nil
}

func saveConfig(config *Config) (string, error) {
	configFile, err := configFilePath()
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}

func displayConfigTable(out io.Writer, config Config) error {
	value := func(v string) string {
		if v == "" {
			return constants.NotAvailable
		}

		return v
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	return renderDetails(out, [][]string{
		{"Connect ID", value(config.ConnectID)},
		{"Secret Key", value(config.SecretKey)},
		{"Base URL", baseURL},
		{"Output", value(config.Output)},
		{"Per Page", strconv.Itoa(config.PerPage)},
		{"Log Level", value(config.LogLevel)},
		{"Log Format", value(config.LogFormat)},
	})
}
