package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// ApplyCmd creates the apply command
func ApplyCmd(app *AppContext) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "apply <event_id> <volunteer_id>",
		Short: "Apply to a published event as a volunteer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, volunteerID := args[0], args[1]

			app.Logger.Debug("apply command",
				zap.String("event_id", eventID),
				zap.String("volunteer_id", volunteerID))

			application, err := services.SubmitApplication(app.Ctx, app.Store, app.Cfg, app.Logger, eventID, volunteerID, message)
			if err != nil {
				return fmt.Errorf("failed to submit application: %w", err)
			}

			fmt.Printf("\n✅ Application submitted\n\n")
			fmt.Printf("Application ID: %s\n", application.ID)
			fmt.Printf("Status:         %s\n", application.Status)
			fmt.Printf("Match Score:    %d\n", application.MatchScore)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message to the organizer")

	return cmd
}
