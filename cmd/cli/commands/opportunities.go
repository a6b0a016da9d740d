package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// OpportunitiesCmd creates the opportunities command
func OpportunitiesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "opportunities <volunteer_id>",
		Short: "List published events scored for a volunteer, best match first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			volunteerID := args[0]

			app.Logger.Debug("opportunities command", zap.String("volunteer_id", volunteerID))

			opportunities, err := services.ListOpportunities(app.Ctx, app.Store, app.Cfg, app.Logger, volunteerID)
			if err != nil {
				return fmt.Errorf("failed to list opportunities: %w", err)
			}

			if len(opportunities) == 0 {
				fmt.Println("\nNo open events right now.")
				return nil
			}

			fmt.Printf("\nFound %d open events:\n\n", len(opportunities))
			fmt.Printf("%-5s  %-36s  %-30s  %-16s\n", "Score", "Event ID", "Title", "Starts")
			fmt.Println("-----  ------------------------------------  ------------------------------  ----------------")
			for _, o := range opportunities {
				fmt.Printf("%-5d  %-36s  %-30s  %-16s\n",
					o.MatchScore, o.Event.ID, o.Event.Title, o.Event.StartsAt.Format("2006-01-02 15:04"))
			}
			fmt.Println()

			return nil
		},
	}
}
