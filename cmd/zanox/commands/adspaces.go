package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAdSpacesCommand creates the ad spaces command group.
func NewAdSpacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "adspaces",
		Aliases: []string{"adspace", "as"},
		Short:   "Manage ad spaces",
		Long:    "List and inspect the websites, newsletters and listings you promote programs on",
	}

	cmd.AddCommand(newAdSpacesListCommand())
	cmd.AddCommand(newAdSpacesGetCommand())

	return cmd
}

func newAdSpacesListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ad spaces",
		Long:  "List all ad spaces of the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(commandContext(cmd))
			if err != nil {
				return err
			}

			query := &zanox.AdSpaceQuery{PageOptions: flags.pageOptions()}

			return runList(cmd, &flags,
				func(ctx context.Context, page int) (*zanox.ListResponse[zanox.AdSpace], error) {
					return client.AdSpaces().Page(ctx, page, query)
				},
				func(ctx context.Context) (*zanox.ListResponse[zanox.AdSpace], error) {
					return client.AdSpaces().All(ctx, query)
				},
				"ad spaces",
				[]string{"ID", "Name", "Type", "URL", "Visitors", "Impressions"},
				func(adspace zanox.AdSpace) []string {
					return []string{
						itoa(adspace.Identifier()), truncate(adspace.Name), adspace.AdSpaceType,
						truncate(adspace.URL), itoa(int(adspace.Visitors)), itoa(int(adspace.Impressions)),
					}
				},
			)
		},
	}

	flags.register(cmd)

	return cmd
}

func newAdSpacesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ADSPACE_ID",
		Short: "Get ad space details",
		Long:  "Display detailed information about a specific ad space",
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

			adspace, err := client.AdSpaces().Find(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get ad space: %w", err)
			}

			if adspace == nil {
				return fmt.Errorf("%w: %d", constants.ErrAdSpaceNotFound, id)
			}

			renderer := newRenderer(cmd.OutOrStdout(), renderAdSpaceDetails)

			return renderer.Render(adspace, viper.GetString("output"))
		},
	}
}

func renderAdSpaceDetails(out io.Writer, adspace *zanox.AdSpace) error {
	return renderDetails(out, [][]string{
		{"ID", itoa(adspace.Identifier())},
		{"Name", adspace.Name},
		{"Type", adspace.AdSpaceType},
		{"URL", adspace.URL},
		{"Description", truncate(adspace.Description)},
		{"Language", adspace.Language},
		{"Scope", optional(adspace.Scope)},
		{"Regions", joinStrings(adspace.Regions)},
		{"Visitors", itoa(int(adspace.Visitors))},
		{"Impressions", itoa(int(adspace.Impressions))},
		{"Check Number", itoa(int(adspace.CheckNumber))},
	})
}
