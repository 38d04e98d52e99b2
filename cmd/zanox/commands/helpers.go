package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/fivetwenty-io/zanox-client/pkg/zanoxclient"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = constants.FormatJSON
	OutputFormatYAML = constants.FormatYAML
)

// NewLogger builds the CLI logger. level is one of debug, info, warn or
// error; format json selects JSON lines, anything else the console writer.
func NewLogger(out io.Writer, level, format string, color bool) zerolog.Logger {
	logLevel := zerolog.InfoLevel

	switch strings.ToLower(level) {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	}

	if format == OutputFormatJSON {
		return zerolog.New(out).Level(logLevel).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).Level(logLevel).With().Timestamp().Logger()
}

// stderrIsTerminal reports whether colored log output makes sense.
func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// loggerFromViper builds the logger selected by the global flags.
func loggerFromViper() zerolog.Logger {
	color := stderrIsTerminal() && !viper.GetBool("no_color")

	return NewLogger(os.Stderr, viper.GetString("log_level"), viper.GetString("log_format"), color)
}

// clientConfig assembles the library configuration from flags, environment
// and config file, in that order of precedence.
func clientConfig() (*zanox.Config, error) {
	connectID := viper.GetString("connect_id")
	if connectID == "" {
		return nil, constants.ErrNoConnectID
	}

	logger := loggerFromViper()

	return &zanox.Config{
		ConnectID: connectID,
		SecretKey: viper.GetString("secret_key"),
		BaseURL:   viper.GetString("base_url"),
		Debug:     viper.GetBool("debug"),
		Logger:    zanox.NewZerologLogger(logger),
		PerPage:   viper.GetInt("per_page"),
	}, nil
}

// createClient creates a Zanox client from the current configuration.
func createClient(ctx context.Context) (zanox.Client, error) {
	config, err := clientConfig()
	if err != nil {
		return nil, err
	}

	client, err := zanoxclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// OutputRenderer handles different output formats.
type OutputRenderer[T any] struct {
	RenderJSON  func(data T) error
	RenderYAML  func(data T) error
	RenderTable func(data T) error
}

// Render outputs data in the specified format.
func (o *OutputRenderer[T]) Render(data T, format string) error {
	switch format {
	case OutputFormatJSON:
		return o.RenderJSON(data)
	case OutputFormatYAML:
		return o.RenderYAML(data)
	case constants.FormatTable, "":
		return o.RenderTable(data)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, format)
	}
}

// newRenderer returns a renderer whose JSON and YAML branches encode data
// as-is and whose table branch is table.
func newRenderer[T any](out io.Writer, table func(io.Writer, T) error) *OutputRenderer[T] {
	return &OutputRenderer[T]{
		RenderJSON: func(data T) error {
			return encodeJSON(out, data)
		},
		RenderYAML: func(data T) error {
			return encodeYAML(out, data)
		},
		RenderTable: func(data T) error {
			return table(out, data)
		},
	}
}

func encodeJSON(out io.Writer, data interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func encodeYAML(out io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close() //nolint:wrapcheck // flush only
}

// renderTable writes header and rows as a table.
func renderTable(out io.Writer, header []string, rows [][]string) error {
	columns := make([]any, len(header))
	for i, column := range header {
		columns[i] = column
	}

	table := tablewriter.NewWriter(out)
	table.Header(columns...)

	for _, row := range rows {
		err := table.Append(row)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderDetails writes property/value pairs as a two-column table.
func renderDetails(out io.Writer, rows [][]string) error {
	return renderTable(out, []string{"Property", "Value"}, rows)
}

// listFlags holds the pagination flags shared by every list command.
type listFlags struct {
	all     bool
	page    int
	perPage int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&f.page, "page", 0, "page to fetch, starting at 0")
	cmd.Flags().IntVar(&f.perPage, "per-page", 0, "results per page (max 50)")
}

// pageOptions returns the per-call page size, nil when unset.
func (f *listFlags) pageOptions() zanox.PageOptions {
	if f.perPage > 0 {
		return zanox.PageOptions{PerPage: zanox.Int(f.perPage)}
	}

	return zanox.PageOptions{}
}

// listing is the result of a list command before rendering.
type listing[T any] struct {
	Pagination zanox.Pagination `json:"pagination" yaml:"pagination"`
	Items      []T              `json:"items"      yaml:"items"`
}

// runList fetches one page or all pages and renders them. row converts
// one item into a table row under header.
func runList[T any](
	cmd *cobra.Command,
	flags *listFlags,
	fetchPage func(ctx context.Context, page int) (*zanox.ListResponse[T], error),
	fetchAll func(ctx context.Context) (*zanox.ListResponse[T], error),
	noun string,
	header []string,
	row func(T) []string,
) error {
	ctx := commandContext(cmd)

	var (
		resp *zanox.ListResponse[T]
		err  error
	)

	if flags.all {
		resp, err = fetchAll(ctx)
	} else {
		resp, err = fetchPage(ctx, flags.page)
	}

	if err != nil {
		return fmt.Errorf("failed to list %s: %w", noun, err)
	}

	out := cmd.OutOrStdout()
	result := listing[T]{Pagination: resp.Pagination, Items: resp.Items}

	renderer := newRenderer(out, func(w io.Writer, data listing[T]) error {
		if len(data.Items) == 0 {
			_, _ = fmt.Fprintf(w, "No %s found\n", noun)

			return nil
		}

		rows := make([][]string, 0, len(data.Items))
		for _, item := range data.Items {
			rows = append(rows, row(item))
		}

		err := renderTable(w, header, rows)
		if err != nil {
			return err
		}

		if !flags.all && data.Pagination.Total > len(data.Items) {
			_, _ = fmt.Fprintf(w, "\nShowing %d of %d %s (page %d). Use --all to fetch all pages.\n",
				len(data.Items), data.Pagination.Total, noun, data.Pagination.Page)
		}

		return nil
	})

	return renderer.Render(result, viper.GetString("output"))
}

// parseID parses a numeric resource identifier.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidID, arg)
	}

	return id, nil
}

// findOptions returns lookup options for a non-zero ad space.
func findOptions(adspace int) *zanox.FindOptions {
	if adspace == 0 {
		return nil
	}

	return &zanox.FindOptions{AdSpace: zanox.Int(adspace)}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func optional(value *string) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return *value
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= constants.DescriptionTruncationLimit {
		return text
	}

	return string(runes[:constants.DescriptionTruncationLimit-3]) + "..."
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func formatNumber(n zanox.Number) string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

// changedString returns value when the flag was set explicitly.
func changedString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return zanox.String(value)
}

func changedInt(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return zanox.Int(value)
}

func changedBool(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return zanox.Bool(value)
}

func joinStrings(values []string) string {
	if len(values) == 0 {
		return constants.NotAvailable
	}

	return strings.Join(values, ", ")
}
