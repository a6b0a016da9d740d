package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// CompleteEventCmd creates the completeEvent command
func CompleteEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "completeEvent <event_id> <profile_id>",
		Short: "Mark an event completed and log history for accepted volunteers",
		Long: `Mark an event completed. Every accepted application is moved to completed,
a history entry is logged for each volunteer, and completion notifications are
sent. Re-running the command resumes an interrupted sweep.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, profileID := args[0], args[1]

			app.Logger.Debug("completeEvent command",
				zap.String("event_id", eventID),
				zap.String("profile_id", profileID))

			summary, err := services.CompleteEvent(app.Ctx, app.Store, app.Sink, app.Cfg, app.Logger, eventID, profileID)
			if err != nil {
				return fmt.Errorf("failed to complete event: %w", err)
			}

			fmt.Printf("\n✅ Event completed\n\n")
			fmt.Printf("Event ID:             %s\n", summary.EventID)
			fmt.Printf("Volunteers processed: %d\n", summary.VolunteersProcessed)

			if len(summary.Errors) > 0 {
				fmt.Printf("\n⚠️  %d sub-steps failed:\n", len(summary.Errors))
				for _, e := range summary.Errors {
					fmt.Printf("  ✗ %s\n", e)
				}
				fmt.Println("\nRe-run the command to retry the failed steps.")
			}
			fmt.Println()

			return nil
		},
	}
}
