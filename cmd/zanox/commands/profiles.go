package commands

import (
	"fmt"
	"io"

	"github.com/fivetwenty-io/zanox-client/internal/constants"
	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewProfilesCommand creates the profiles command group.
func NewProfilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"profile"},
		Short:   "Show account profiles",
		Long:    "Show the account profiles of the authenticated publisher (signed request)",
	}

	cmd.AddCommand(newProfilesListCommand())
	cmd.AddCommand(newProfilesFirstCommand())

	return cmd
}

func newProfilesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Long:  "List every profile returned for the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			profiles, err := client.Profiles().All(ctx)
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}

			renderer := newRenderer(cmd.OutOrStdout(), func(w io.Writer, data []zanox.Profile) error {
				if len(data) == 0 {
					_, _ = fmt.Fprintln(w, "No profiles found")

					return nil
				}

				rows := make([][]string, 0, len(data))
				for _, profile := range data {
					rows = append(rows, []string{
						itoa(profile.Identifier()), profile.LoginName,
						profile.FirstName + " " + profile.LastName, profile.Email, profile.Country,
					})
				}

				return renderTable(w, []string{"ID", "Login", "Name", "Email", "Country"}, rows)
			})

			return renderer.Render(profiles, viper.GetString("output"))
		},
	}
}

func newProfilesFirstCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "first",
		Short: "Show the primary profile",
		Long:  "Display the first profile returned for the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			profile, err := client.Profiles().First(ctx)
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}

			if profile == nil {
				return constants.ErrProfileNotFound
			}

			renderer := newRenderer(cmd.OutOrStdout(), renderProfileDetails)

			return renderer.Render(profile, viper.GetString("output"))
		},
	}
}

func renderProfileDetails(out io.Writer, profile *zanox.Profile) error {
	return renderDetails(out, [][]string{
		{"ID", itoa(profile.Identifier())},
		{"Login", profile.LoginName},
		{"User Name", profile.UserName},
		{"Name", profile.FirstName + " " + profile.LastName},
		{"Email", profile.Email},
		{"Company", optional(profile.Company)},
		{"Street", profile.Street1},
		{"City", profile.Zipcode + " " + profile.City},
		{"Country", profile.Country},
		{"Ad Rank", formatNumber(profile.AdRank)},
		{"Advertiser", yesNo(bool(profile.IsAdvertiser))},
		{"Sub-login", yesNo(bool(profile.IsSublogin))},
	})
}
