package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subcommandNames(cmd *cobra.Command) []string {
	var names []string
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	return names
}

func TestCommandGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cmd         *cobra.Command
		use         string
		aliases     []string
		subcommands []string
	}{
		{"programs", NewProgramsCommand(), "programs", []string{"program", "prog"}, []string{"list", "get", "categories", "admedia-categories"}},
		{"applications", NewApplicationsCommand(), "applications", []string{"application", "apps"}, []string{"list"}},
		{"adspaces", NewAdSpacesCommand(), "adspaces", []string{"adspace", "as"}, []string{"list", "get"}},
		{"admedia", NewAdMediaCommand(), "admedia", []string{"admedium", "am"}, []string{"list", "get"}},
		{"products", NewProductsCommand(), "products", []string{"product"}, []string{"list", "get"}},
		{"incentives", NewIncentivesCommand(), "incentives", []string{"incentive", "vouchers"}, []string{"list", "get"}},
		{"profiles", NewProfilesCommand(), "profiles", []string{"profile"}, []string{"list", "first"}},
		{"config", NewConfigCommand(), "config", nil, []string{"show", "set"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.Equal(t, tt.aliases, tt.cmd.Aliases)
			assert.NotEmpty(t, tt.cmd.Short)
			assert.NotEmpty(t, tt.cmd.Long)
			assert.ElementsMatch(t, tt.subcommands, subcommandNames(tt.cmd))
		})
	}
}

func TestListCommandsHavePaginationFlags(t *testing.T) {
	t.Parallel()

	for _, cmd := range []*cobra.Command{
		newProgramsListCommand(),
		newApplicationsListCommand(),
		newAdSpacesListCommand(),
		newAdMediaListCommand(),
		newProductsListCommand(),
		newIncentivesListCommand(),
	} {
		for _, flagName := range []string{"all", "page", "per-page"} {
			assert.NotNil(t, cmd.Flags().Lookup(flagName), "%s should have flag %s", cmd.Use, flagName)
		}
	}
}

func TestProgramsListCommand(t *testing.T) {
	t.Parallel()

	cmd := newProgramsListCommand()
	assert.Equal(t, "list", cmd.Use)
	assert.Equal(t, "List programs", cmd.Short)
	assert.NotNil(t, cmd.RunE)

	for _, flagName := range []string{"query", "start-date", "region", "partnership", "has-products"} {
		assert.NotNil(t, cmd.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	assert.Equal(t, "q", cmd.Flags().Lookup("query").Shorthand)
}

func TestProductsListCommand(t *testing.T) {
	t.Parallel()

	cmd := newProductsListCommand()

	flags := []string{"query", "region", "min-price", "max-price", "programs", "has-images", "adspace", "partnership", "ean", "merchant-category"}
	for _, flagName := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}
}

func TestIncentivesCommandsHaveExclusiveFlag(t *testing.T) {
	t.Parallel()

	for _, cmd := range []*cobra.Command{newIncentivesListCommand(), newIncentivesGetCommand()} {
		flag := cmd.Flags().Lookup("exclusive")
		require.NotNil(t, flag)
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestGetCommandsRequireOneArgument(t *testing.T) {
	t.Parallel()

	for _, cmd := range []*cobra.Command{
		newProgramsGetCommand(),
		newAdSpacesGetCommand(),
		newAdMediaGetCommand(),
		newProductsGetCommand(),
		newIncentivesGetCommand(),
		newProgramsAdmediaCategoriesCommand(),
	} {
		require.NotNil(t, cmd.Args)
		require.Error(t, cmd.Args(cmd, nil))
		require.NoError(t, cmd.Args(cmd, []string{"1"}))
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID("1234")
	require.NoError(t, err)
	assert.Equal(t, 1234, id)

	_, err = parseID("abc")
	require.ErrorIs(t, err, constants.ErrInvalidID)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short"))

	long := strings.Repeat("x", constants.DescriptionTruncationLimit+10)
	truncated := truncate(long)
	assert.Len(t, truncated, constants.DescriptionTruncationLimit)
	assert.True(t, strings.HasSuffix(truncated, "..."))
}

func TestOutputRendererRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	renderer := newRenderer(&buf, func(io.Writer, string) error { return nil })
	err := renderer.Render("x", "xml")
	require.ErrorIs(t, err, constants.ErrUnsupportedOutput)
}

func TestNewLoggerJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewLogger(&buf, "warn", OutputFormatJSON, false)
	logger.Info().Msg("dropped")
	logger.Warn().Str("program", "12").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "12", entry["program"])
}

func TestConfigMasked(t *testing.T) {
	t.Parallel()

	config := Config{ConnectID: "connect", SecretKey: "secret"}
	masked := config.Masked()

	assert.Equal(t, constants.MaskedSecret, masked.SecretKey)
	assert.Equal(t, "secret", config.SecretKey)
	assert.Empty(t, Config{}.Masked().SecretKey)
}

//nolint:paralleltest // mutates the global viper instance
func TestSetConfigValue(t *testing.T) {
	defer viper.Reset()

	config := &Config{}

	require.NoError(t, setConfigValue(config, KeyConnectID, "connect"))
	require.NoError(t, setConfigValue(config, KeyPerPage, "25"))
	require.NoError(t, setConfigValue(config, KeyOutput, constants.FormatJSON))
	assert.Equal(t, "connect", config.ConnectID)
	assert.Equal(t, 25, config.PerPage)
	assert.Equal(t, constants.FormatJSON, config.Output)

	require.ErrorIs(t, setConfigValue(config, "colour", "red"), constants.ErrUnknownConfigKey)
	require.ErrorIs(t, setConfigValue(config, KeyOutput, "xml"), constants.ErrUnsupportedOutput)
	require.Error(t, setConfigValue(config, KeyPerPage, "many"))
}

//nolint:paralleltest // mutates the global viper instance
func TestCreateClientRequiresConnectID(t *testing.T) {
	defer viper.Reset()

	_, err := createClient(t.Context())
	require.ErrorIs(t, err, constants.ErrNoConnectID)
}

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")

		switch request.URL.Path {
		case "/programs":
			assert.Equal(t, "ZXWS connect", request.Header.Get("Authorization"))
			assert.Equal(t, "5", request.URL.Query().Get("items"))
			_, _ = writer.Write([]byte(`{"total": 12, "programItems": {"programItem": [
				{"@id": "1", "$": "Shoes"}, {"@id": "2", "$": "Books"}]}}`))
		case "/programs/program/404":
			_, _ = writer.Write([]byte(`{"programItem": []}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
}

func configureViper(serverURL string) {
	viper.Set(KeyConnectID, "connect")
	viper.Set(KeySecretKey, "secret")
	viper.Set(KeyBaseURL, serverURL)
	viper.Set(KeyLogLevel, "error")
}

//nolint:paralleltest // mutates the global viper instance
func TestProgramsListRendersTable(t *testing.T) {
	server := newAPIServer(t)
	defer server.Close()
	defer viper.Reset()

	configureViper(server.URL)

	var out bytes.Buffer

	cmd := NewProgramsCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--per-page", "5"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Shoes")
	assert.Contains(t, out.String(), "Showing 2 of 12 programs")
}

//nolint:paralleltest // mutates the global viper instance
func TestProgramsListRendersJSON(t *testing.T) {
	server := newAPIServer(t)
	defer server.Close()
	defer viper.Reset()

	configureViper(server.URL)
	viper.Set(KeyOutput, constants.FormatJSON)

	var out bytes.Buffer

	cmd := NewProgramsCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--per-page", "5"})

	require.NoError(t, cmd.Execute())

	var result struct {
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
		Items []struct {
			ID   int    `json:"@id"`
			Name string `json:"name"`
		} `json:"items"`
	}

	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 12, result.Pagination.Total)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Books", result.Items[1].Name)
}

//nolint:paralleltest // mutates the global viper instance
func TestProgramsGetReportsMissingProgram(t *testing.T) {
	server := newAPIServer(t)
	defer server.Close()
	defer viper.Reset()

	configureViper(server.URL)

	cmd := NewProgramsCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"get", "404"})

	err := cmd.Execute()
	require.ErrorIs(t, err, constants.ErrProgramNotFound)
}

//nolint:paralleltest // mutates the global viper instance
func TestVersionCommandYAML(t *testing.T) {
	defer viper.Reset()

	viper.Set(KeyOutput, constants.FormatYAML)

	var out bytes.Buffer

	cmd := NewVersionCommand("1.2.3", "abc123", "2026-01-01")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "version: 1.2.3")
	assert.Contains(t, out.String(), "commit: abc123")
}
