package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Search products",
		Long:    "Search advertiser product feeds and inspect single products",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var (
		flags              listFlags
		query              string
		region             string
		minPrice           int
		maxPrice           int
		programs           []int
		hasImages          bool
		adspace            int
		partnership        string
		ean                string
		merchantCategories []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search products",
		Long:  "Search products by keyword, price range, programs or merchant category",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(commandContext(cmd))
			if err != nil {
				return err
			}

			productQuery := &zanox.ProductQuery{
				PageOptions:        flags.pageOptions(),
				Query:              changedString(cmd, "query", query),
				Region:             changedString(cmd, "region", region),
				MinPrice:           changedInt(cmd, "min-price", minPrice),
				MaxPrice:           changedInt(cmd, "max-price", maxPrice),
				Programs:           programs,
				HasImages:          changedBool(cmd, "has-images", hasImages),
				AdSpace:            changedInt(cmd, "adspace", adspace),
				Partnership:        changedString(cmd, "partnership", partnership),
				EAN:                changedString(cmd, "ean", ean),
				MerchantCategories: merchantCategories,
			}

			return runList(cmd, &flags,
				func(ctx context.Context, page int) (*zanox.ListResponse[zanox.Product], error) {
					return client.Products().Page(ctx, page, productQuery)
				},
				func(ctx context.Context) (*zanox.ListResponse[zanox.Product], error) {
					return client.Products().All(ctx, productQuery)
				},
				"products",
				[]string{"ID", "Name", "Price", "Currency", "Program"},
				func(product zanox.Product) []string {
					return []string{
						product.Identifier(), truncate(product.Name), formatNumber(product.Price),
						product.Currency, truncate(product.Program.Name),
					}
				},
			)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&query, "query", "q", "", "search keyword")
	cmd.Flags().StringVar(&region, "region", "", "filter by region code")
	cmd.Flags().IntVar(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().IntVar(&maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().IntSliceVar(&programs, "programs", nil, "restrict to these program IDs")
	cmd.Flags().BoolVar(&hasImages, "has-images", false, "only products with images")
	cmd.Flags().IntVar(&adspace, "adspace", 0, "ad space the tracking links are generated for")
	cmd.Flags().StringVar(&partnership, "partnership", "", "filter by partnership (all, confirmed)")
	cmd.Flags().StringVar(&ean, "ean", "", "filter by EAN")
	cmd.Flags().StringArrayVar(&merchantCategories, "merchant-category", nil, "filter by merchant category (repeatable)")

	return cmd
}

func newProductsGetCommand() *cobra.Command {
	var adspace int

	cmd := &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get product details",
		Long:  "Display detailed information about a specific product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			product, err := client.Products().Find(ctx, args[0], findOptions(adspace))
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}

			renderer := newRenderer(cmd.OutOrStdout(), renderProductDetails)

			return renderer.Render(product, viper.GetString("output"))
		},
	}

	cmd.Flags().IntVar(&adspace, "adspace", 0, "ad space the tracking links are generated for")

	return cmd
}

func renderProductDetails(out io.Writer, product *zanox.Product) error {
	rows := [][]string{
		{"ID", product.Identifier()},
		{"Name", product.Name},
		{"Price", formatNumber(product.Price) + " " + product.Currency},
		{"Program", fmt.Sprintf("%s (%d)", product.Program.Name, product.Program.Identifier())},
		{"Modified", product.Modified.String()},
		{"Manufacturer", optional(product.Manufacturer)},
		{"EAN", optional(product.EAN)},
		{"Delivery Time", optional(product.DeliveryTime)},
		{"Merchant Category", optional(product.MerchantCategory)},
		{"Description", truncate(optional(product.Description))},
	}

	for _, link := range product.TrackingLinks {
		rows = append(rows, []string{"Tracking Link " + itoa(link.Identifier()), link.PPC})
	}

	return renderDetails(out, rows)
}
