package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// WithdrawCmd creates the withdraw command
func WithdrawCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <application_id> <volunteer_id>",
		Short: "Withdraw a pending application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			applicationID, volunteerID := args[0], args[1]

			app.Logger.Debug("withdraw command",
				zap.String("application_id", applicationID),
				zap.String("volunteer_id", volunteerID))

			application, err := services.WithdrawApplication(app.Ctx, app.Store, app.Logger, applicationID, volunteerID)
			if err != nil {
				return fmt.Errorf("failed to withdraw application: %w", err)
			}

			fmt.Printf("\n✅ Application %s withdrawn (status: %s)\n\n", application.ID, application.Status)

			return nil
		},
	}
}
