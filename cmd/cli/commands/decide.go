package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/model"
	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// DecideCmd creates the decide command
func DecideCmd(app *AppContext) *cobra.Command {
	var adminMessage string

	cmd := &cobra.Command{
		Use:   "decide <application_id> <profile_id> <accept|reject|waitlist>",
		Short: "Decide a pending application",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			applicationID, profileID := args[0], args[1]
			decision := model.Decision(args[2])

			app.Logger.Debug("decide command",
				zap.String("application_id", applicationID),
				zap.String("decision", string(decision)))

			application, err := services.DecideApplication(
				app.Ctx, app.Store, app.Sink, app.Cfg, app.Logger,
				applicationID, profileID, decision, adminMessage,
			)
			if err != nil {
				if errors.Is(err, services.ErrCapacityExceeded) {
					return fmt.Errorf("event is at capacity, application left pending")
				}
				return fmt.Errorf("failed to decide application: %w", err)
			}

			fmt.Printf("\n✅ Application decided\n\n")
			fmt.Printf("Application ID: %s\n", application.ID)
			fmt.Printf("Status:         %s\n", application.Status)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVarP(&adminMessage, "message", "m", "", "Message to the volunteer")

	return cmd
}
