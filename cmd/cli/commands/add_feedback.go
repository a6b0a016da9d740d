package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// AddFeedbackCmd creates the addFeedback command
func AddFeedbackCmd(app *AppContext) *cobra.Command {
	var feedback string

	cmd := &cobra.Command{
		Use:   "addFeedback <history_entry_id> <rating>",
		Short: "Record a rating and feedback on a volunteer history entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			historyEntryID := args[0]
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be a number: %w", err)
			}

			app.Logger.Debug("addFeedback command",
				zap.String("history_entry_id", historyEntryID),
				zap.Int("rating", rating))

			entry, err := services.AddFeedback(app.Ctx, app.Store, app.Logger, historyEntryID, feedback, rating)
			if err != nil {
				return fmt.Errorf("failed to add feedback: %w", err)
			}

			fmt.Printf("\n✅ Feedback recorded\n\n")
			fmt.Printf("History entry: %s\n", entry.ID)
			fmt.Printf("Rating:        %d\n", entry.Rating)
			if entry.Feedback != "" {
				fmt.Printf("Feedback:      %s\n", entry.Feedback)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVarP(&feedback, "feedback", "f", "", "Feedback text")

	return cmd
}
