package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/db"
)

// ListApplicantsCmd creates the listApplicants command
func ListApplicantsCmd(app *AppContext) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "listApplicants <event_id>",
		Short: "List applications for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID := args[0]

			app.Logger.Debug("listApplicants command",
				zap.String("event_id", eventID),
				zap.String("status", status))

			var applications []db.Application
			var err error
			if status != "" {
				applications, err = app.Store.GetApplicationsByEventAndStatus(app.Ctx, eventID, status)
			} else {
				applications, err = app.Store.GetApplicationsByEvent(app.Ctx, eventID)
			}
			if err != nil {
				return fmt.Errorf("failed to list applications: %w", err)
			}

			if len(applications) == 0 {
				fmt.Println("\nNo applications found.")
				return nil
			}

			fmt.Printf("\nFound %d applications:\n\n", len(applications))
			fmt.Printf("%-36s  %-36s  %-10s  %-5s\n", "Application ID", "Volunteer ID", "Status", "Score")
			fmt.Println("------------------------------------  ------------------------------------  ----------  -----")
			for _, a := range applications {
				fmt.Printf("%-36s  %-36s  %-10s  %-5d\n", a.ID, a.VolunteerID, a.Status, a.MatchScore)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by application status")

	return cmd
}
