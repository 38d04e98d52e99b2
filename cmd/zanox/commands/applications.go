package commands

import (
	"context"

	"github.com/fivetwenty-io/zanox-client/pkg/zanox"
	"github.com/spf13/cobra"
)

// NewApplicationsCommand creates the program applications command group.
func NewApplicationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"application", "apps"},
		Short:   "Manage program applications",
		Long:    "List the applications your ad spaces have sent to advertiser programs",
	}

	cmd.AddCommand(newApplicationsListCommand())

	return cmd
}

func newApplicationsListCommand() *cobra.Command {
	var (
		flags   listFlags
		program int
		adspace int
		status  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List program applications",
		Long:  "List program applications, optionally filtered by program, ad space or status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(commandContext(cmd))
			if err != nil {
				return err
			}

			query := &zanox.ProgramApplicationQuery{
				PageOptions: flags.pageOptions(),
				Program:     changedInt(cmd, "program", program),
				AdSpace:     changedInt(cmd, "adspace", adspace),
				Status:      changedString(cmd, "status", status),
			}

			return runList(cmd, &flags,
				func(ctx context.Context, page int) (*zanox.ListResponse[zanox.ProgramApplication], error) {
					return client.ProgramApplications().Page(ctx, page, query)
				},
				func(ctx context.Context) (*zanox.ListResponse[zanox.ProgramApplication], error) {
					return client.ProgramApplications().All(ctx, query)
				},
				"program applications",
				[]string{"ID", "Program", "Ad Space", "Status", "Created"},
				func(application zanox.ProgramApplication) []string {
					return []string{
						itoa(application.Identifier()),
						truncate(application.Program.Name),
						truncate(application.AdSpace.Name),
						application.Status,
						application.CreateDate.Format("2006-01-02"),
					}
				},
			)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&program, "program", 0, "filter by program ID")
	cmd.Flags().IntVar(&adspace, "adspace", 0, "filter by ad space ID")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (open, confirmed, rejected, ...)")

	return cmd
}
