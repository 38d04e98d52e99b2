package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewProgramsCommand creates the programs command group.
func NewProgramsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "programs",
		Aliases: []string{"program", "prog"},
		Short:   "Browse advertiser programs",
		Long:    "Search advertiser programs and inspect program details and categories",
	}

	cmd.AddCommand(newProgramsListCommand())
	cmd.AddCommand(newProgramsGetCommand())
	cmd.AddCommand(newProgramsCategoriesCommand())
	cmd.AddCommand(newProgramsAdmediaCategoriesCommand())

	return cmd
}

func newProgramsListCommand() *cobra.Command {
	var (
		flags       listFlags
		query       string
		startDate   string
		region      string
		partnership string
		hasProducts bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List programs",
		Long:  "List advertiser programs, optionally filtered by keyword, region or partnership",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(commandContext(cmd))
			if err != nil {
				return err
			}

			programQuery := &zanox.ProgramQuery{
				PageOptions: flags.pageOptions(),
				Query:       changedString(cmd, "query", query),
				Region:      changedString(cmd, "region", region),
				Partnership: changedString(cmd, "partnership", partnership),
				HasProducts: changedBool(cmd, "has-products", hasProducts),
			}

			if startDate != "" {
				parsed, err := time.Parse("2006-01-02", startDate)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", startDate, err)
				}

				programQuery.StartDate = &parsed
			}

			return runList(cmd, &flags,
				func(ctx context.Context, page int) (*zanox.ListResponse[zanox.Program], error) {
					return client.Programs().Page(ctx, page, programQuery)
				},
				func(ctx context.Context) (*zanox.ListResponse[zanox.Program], error) {
					return client.Programs().All(ctx, programQuery)
				},
				"programs",
				[]string{"ID", "Name", "Status", "Ad Rank", "Products", "Currency"},
				func(program zanox.Program) []string {
					return []string{
						itoa(program.Identifier()), truncate(program.Name), program.Status,
						formatNumber(program.AdRank), itoa(int(program.Products)), program.Currency,
					}
				},
			)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&query, "query", "q", "", "search keyword")
	cmd.Flags().StringVar(&startDate, "start-date", "", "only programs started after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&region, "region", "", "filter by region code")
	cmd.Flags().StringVar(&partnership, "partnership", "", "filter by partnership (direct, indirect)")
	cmd.Flags().BoolVar(&hasProducts, "has-products", false, "only programs with a product feed")

	return cmd
}

func newProgramsGetCommand() *cobra.Command {
	var adspace int

	cmd := &cobra.Command{
		Use:   "get PROGRAM_ID",
		Short: "Get program details",
		Long:  "Display detailed information about a specific program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			program, err := client.Programs().Find(ctx, id, findOptions(adspace))
			if err != nil {
				return fmt.Errorf("failed to get program: %w", err)
			}

			if program == nil {
				return fmt.Errorf("%w: %d", constants.ErrProgramNotFound, id)
			}

			renderer := newRenderer(cmd.OutOrStdout(), renderProgramDetails)

			return renderer.Render(program, viper.GetString("output"))
		},
	}

	cmd.Flags().IntVar(&adspace, "adspace", 0, "ad space the tracking links are generated for")

	return cmd
}

func renderProgramDetails(out io.Writer, program *zanox.Program) error {
	rows := [][]string{
		{"ID", itoa(program.Identifier())},
		{"Name", program.Name},
	}

	if program.IsShort() {
		return renderDetails(out, rows)
	}

	rows = append(rows,
		[]string{"Status", program.Status},
		[]string{"Ad Rank", formatNumber(program.AdRank)},
		[]string{"Application Required", yesNo(bool(program.ApplicationRequired))},
		[]string{"Products", itoa(int(program.Products))},
		[]string{"Start Date", program.StartDate.Format("2006-01-02")},
		[]string{"URL", program.URL},
		[]string{"Currency", program.Currency},
		[]string{"Regions", joinStrings(program.Regions)},
		[]string{"Description", truncate(program.Description)},
		[]string{"Terms URL", optional(program.TermsURL)},
	)

	return renderDetails(out, rows)
}

func newProgramsCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List program categories",
		Long:  "List the category tree programs are filed under",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			categories, err := client.Programs().Categories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list program categories: %w", err)
			}

			return renderCategories(cmd.OutOrStdout(), categories)
		},
	}
}

func newProgramsAdmediaCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "admedia-categories PROGRAM_ID",
		Short: "List ad media categories of a program",
		Long:  "List the categories a program files its ad media under",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			categories, err := client.Programs().AdmediaCategories(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to list ad media categories: %w", err)
			}

			return renderCategories(cmd.OutOrStdout(), categories)
		},
	}
}

func renderCategories(out io.Writer, categories zanox.Categories) error {
	renderer := newRenderer(out, func(w io.Writer, data zanox.Categories) error {
		if len(data) == 0 {
			_, _ = fmt.Fprintln(w, "No categories found")

			return nil
		}

		rows := make([][]string, 0, len(data))
		for _, category := range data {
			rows = append(rows, []string{itoa(category.Identifier()), optional(category.Name)})
		}

		return renderTable(w, []string{"ID", "Name"}, rows)
	})

	return renderer.Render(categories, viper.GetString("output"))
}
