package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAdMediaCommand creates the ad media command group.
func NewAdMediaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "admedia",
		Aliases: []string{"admedium", "am"},
		Short:   "Browse ad media",
		Long:    "Search the banners, text links and other creatives programs offer",
	}

	cmd.AddCommand(newAdMediaListCommand())
	cmd.AddCommand(newAdMediaGetCommand())

	return cmd
}

func newAdMediaListCommand() *cobra.Command {
	var (
		flags        listFlags
		program      int
		region       string
		format       int
		admediumType string
		purpose      string
		partnership  string
		category     int
		adspace      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ad media",
		Long:  "List ad media, optionally filtered by program, type, purpose or category",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(commandContext(cmd))
			if err != nil {
				return err
			}

			query := &zanox.AdMediumQuery{
				PageOptions:  flags.pageOptions(),
				Program:      changedInt(cmd, "program", program),
				Region:       changedString(cmd, "region", region),
				Format:       changedInt(cmd, "format", format),
				AdMediumType: changedString(cmd, "type", admediumType),
				Purpose:      changedString(cmd, "purpose", purpose),
				Partnership:  changedString(cmd, "partnership", partnership),
				Category:     changedInt(cmd, "category", category),
				AdSpace:      changedInt(cmd, "adspace", adspace),
			}

			return runList(cmd, &flags,
				func(ctx context.Context, page int) (*zanox.ListResponse[zanox.AdMedium], error) {
					return client.AdMedia().Page(ctx, page, query)
				},
				func(ctx context.Context) (*zanox.ListResponse[zanox.AdMedium], error) {
					return client.AdMedia().All(ctx, query)
				},
				"ad media",
				[]string{"ID", "Name", "Type", "Program", "Purpose"},
				func(admedium zanox.AdMedium) []string {
					return []string{
						itoa(admedium.Identifier()), truncate(admedium.Name), admedium.AdMediumType,
						truncate(admedium.Program.Name), optional(admedium.Purpose),
					}
				},
			)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&program, "program", 0, "filter by program ID")
	cmd.Flags().StringVar(&region, "region", "", "filter by region code")
	cmd.Flags().IntVar(&format, "format", 0, "filter by format ID")
	cmd.Flags().StringVar(&admediumType, "type", "", "filter by type (html, script, image, imageText, text, lookatMedia)")
	cmd.Flags().StringVar(&purpose, "purpose", "", "filter by purpose (startPage, productDeeplink, categoryDeeplink, searchDeeplink)")
	cmd.Flags().StringVar(&partnership, "partnership", "", "filter by partnership")
	cmd.Flags().IntVar(&category, "category", 0, "filter by category ID")
	cmd.Flags().IntVar(&adspace, "adspace", 0, "ad space the tracking links are generated for")

	return cmd
}

func newAdMediaGetCommand() *cobra.Command {
	var adspace int

	cmd := &cobra.Command{
		Use:   "get ADMEDIUM_ID",
		Short: "Get ad medium details",
		Long:  "Display detailed information about a specific ad medium",
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

			admedium, err := client.AdMedia().Find(ctx, id, findOptions(adspace))
			if err != nil {
				return fmt.Errorf("failed to get ad medium: %w", err)
			}

			renderer := newRenderer(cmd.OutOrStdout(), renderAdMediumDetails)

			return renderer.Render(admedium, viper.GetString("output"))
		},
	}

	cmd.Flags().IntVar(&adspace, "adspace", 0, "ad space the tracking links are generated for")

	return cmd
}

func renderAdMediumDetails(out io.Writer, admedium *zanox.AdMedium) error {
	rows := [][]string{
		{"ID", itoa(admedium.Identifier())},
		{"Name", admedium.Name},
		{"Type", admedium.AdMediumType},
		{"Ad Rank", formatNumber(admedium.AdRank)},
		{"Program", fmt.Sprintf("%s (%d)", admedium.Program.Name, admedium.Program.Identifier())},
		{"Title", optional(admedium.Title)},
		{"Purpose", optional(admedium.Purpose)},
		{"Description", truncate(optional(admedium.Description))},
	}

	for _, link := range admedium.TrackingLinks {
		rows = append(rows, []string{"Tracking Link " + itoa(link.Identifier()), link.PPC})
	}

	return renderDetails(out, rows)
}
