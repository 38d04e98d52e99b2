package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewIncentivesCommand creates the incentives command group.
func NewIncentivesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "incentives",
		Aliases: []string{"incentive", "vouchers"},
		Short:   "Browse incentives",
		Long:    "List vouchers, samples and other incentives, including exclusive ones",
	}

	cmd.AddCommand(newIncentivesListCommand())
	cmd.AddCommand(newIncentivesGetCommand())

	return cmd
}

func incentivesClient(client zanox.Client, exclusive bool) zanox.IncentivesClient {
	if exclusive {
		return client.ExclusiveIncentives()
	}

	return client.Incentives()
}

func newIncentivesListCommand() *cobra.Command {
	var (
		flags         listFlags
		exclusive     bool
		program       int
		adspace       int
		incentiveType string
		region        string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incentives",
		Long:  "List public or exclusive incentives, optionally filtered by program, ad space or type",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(commandContext(cmd))
			if err != nil {
				return err
			}

			incentives := incentivesClient(client, exclusive)
			query := &zanox.IncentiveQuery{
				PageOptions:   flags.pageOptions(),
				Program:       changedInt(cmd, "program", program),
				AdSpace:       changedInt(cmd, "adspace", adspace),
				IncentiveType: changedString(cmd, "type", incentiveType),
				Region:        changedString(cmd, "region", region),
			}

			return runList(cmd, &flags,
				func(ctx context.Context, page int) (*zanox.ListResponse[zanox.Incentive], error) {
					return incentives.Page(ctx, page, query)
				},
				func(ctx context.Context) (*zanox.ListResponse[zanox.Incentive], error) {
					return incentives.All(ctx, query)
				},
				"incentives",
				[]string{"ID", "Name", "Type", "Program", "Coupon", "Exclusive"},
				func(incentive zanox.Incentive) []string {
					return []string{
						itoa(incentive.Identifier()), truncate(incentive.Name), incentive.IncentiveType,
						truncate(incentive.Program.Name), optional(incentive.CouponCode), yesNo(incentive.Exclusive),
					}
				},
			)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "list exclusive incentives (signed request)")
	cmd.Flags().IntVar(&program, "program", 0, "filter by program ID")
	cmd.Flags().IntVar(&adspace, "adspace", 0, "filter by ad space ID")
	cmd.Flags().StringVar(&incentiveType, "type", "", "filter by type (coupons, samples, bargains, freeProducts, noShippingCosts, lotteries)")
	cmd.Flags().StringVar(&region, "region", "", "filter by region code")

	return cmd
}

func newIncentivesGetCommand() *cobra.Command {
	var (
		exclusive bool
		adspace   int
	)

	cmd := &cobra.Command{
		Use:   "get INCENTIVE_ID",
		Short: "Get incentive details",
		Long:  "Display detailed information about a specific incentive",
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

			incentive, err := incentivesClient(client, exclusive).Find(ctx, id, findOptions(adspace))
			if err != nil {
				return fmt.Errorf("failed to get incentive: %w", err)
			}

			renderer := newRenderer(cmd.OutOrStdout(), renderIncentiveDetails)

			return renderer.Render(incentive, viper.GetString("output"))
		},
	}

	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "look up an exclusive incentive (signed request)")
	cmd.Flags().IntVar(&adspace, "adspace", 0, "ad space the tracking links are generated for")

	return cmd
}

func renderIncentiveDetails(out io.Writer, incentive *zanox.Incentive) error {
	endDate := "open"
	if incentive.EndDate != nil {
		endDate = incentive.EndDate.Format("2006-01-02")
	}

	return renderDetails(out, [][]string{
		{"ID", itoa(incentive.Identifier())},
		{"Name", incentive.Name},
		{"Type", incentive.IncentiveType},
		{"Exclusive", yesNo(incentive.Exclusive)},
		{"Program", fmt.Sprintf("%s (%d)", incentive.Program.Name, incentive.Program.Identifier())},
		{"Ad Medium", fmt.Sprintf("%s (%d)", incentive.AdMedium.Name, incentive.AdMedium.Identifier())},
		{"Coupon Code", optional(incentive.CouponCode)},
		{"Start Date", incentive.StartDate.Format("2006-01-02")},
		{"End Date", endDate},
		{"New Customers Only", yesNo(bool(incentive.NewCustomerOnly))},
		{"Customer Info", truncate(incentive.InfoForCustomer)},
		{"Regions", joinStrings(incentive.Regions)},
	})
}
