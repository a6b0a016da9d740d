package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// HistoryCmd creates the history command
func HistoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history <volunteer_id>",
		Short: "List a volunteer's participation history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			volunteerID := args[0]

			app.Logger.Debug("history command", zap.String("volunteer_id", volunteerID))

			records, err := services.ListHistory(app.Ctx, app.Store, app.Logger, volunteerID)
			if err != nil {
				return fmt.Errorf("failed to list history: %w", err)
			}

			if len(records) == 0 {
				fmt.Println("\nNo history yet.")
				return nil
			}

			fmt.Printf("\nFound %d history entries:\n\n", len(records))
			fmt.Printf("%-36s  %-30s  %-6s  %-6s  %s\n", "Entry ID", "Event", "Hours", "Rating", "Feedback")
			fmt.Println("------------------------------------  ------------------------------  ------  ------  --------")
			for _, r := range records {
				title := r.EventTitle
				if title == "" {
					title = "(event deleted)"
				}
				rating := "-"
				if r.Entry.Rating > 0 {
					rating = fmt.Sprintf("%d", r.Entry.Rating)
				}
				fmt.Printf("%-36s  %-30s  %-6.1f  %-6s  %s\n",
					r.Entry.ID, title, r.Entry.HoursLogged, rating, r.Entry.Feedback)
			}
			fmt.Println()

			return nil
		},
	}
}
