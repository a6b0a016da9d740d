package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/pkg/core/services"
)

// CreateEventSeriesCmd creates the createEventSeries command
func CreateEventSeriesCmd(app *AppContext) *cobra.Command {
	var (
		creatorID      string
		title          string
		description    string
		location       string
		startsAt       string
		endsAt         string
		minVolunteers  int
		maxVolunteers  int
		skills         []string
		rrule          string
		maxOccurrences int
	)

	cmd := &cobra.Command{
		Use:   "createEventSeries",
		Short: "Create a series of draft events from a recurrence rule",
		Long: `Create a series of draft events from an RRULE (RFC 5545), for example
"FREQ=WEEKLY;BYDAY=SA;COUNT=8". The --starts time anchors the recurrence and
each occurrence keeps the template's time of day and duration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("createEventSeries command", zap.String("rrule", rrule))

			input, err := buildEventInput(creatorID, title, description, location,
				startsAt, endsAt, minVolunteers, maxVolunteers, skills)
			if err != nil {
				return err
			}

			result, err := services.CreateEventSeries(app.Ctx, app.Store, app.Logger, *input, rrule, maxOccurrences)
			if err != nil {
				return fmt.Errorf("failed to create event series: %w", err)
			}

			fmt.Printf("\n✅ Event series created\n\n")
			fmt.Printf("Rule:       %s\n", result.RRule)
			fmt.Printf("Events:     %d\n", len(result.EventIDs))
			fmt.Printf("First date: %s\n", result.FirstDate.Format("2006-01-02"))
			fmt.Printf("Last date:  %s\n", result.LastDate.Format("2006-01-02"))
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&creatorID, "creator", "", "Profile ID of the event creator")
	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&location, "location", "", "Event location")
	cmd.Flags().StringVar(&startsAt, "starts", "", "First start time (RFC3339)")
	cmd.Flags().StringVar(&endsAt, "ends", "", "First end time (RFC3339)")
	cmd.Flags().IntVar(&minVolunteers, "min", 1, "Minimum volunteers needed")
	cmd.Flags().IntVar(&maxVolunteers, "max", 0, "Maximum volunteers (0 for no cap)")
	cmd.Flags().StringArrayVar(&skills, "skill", nil, "Required skill as skillID:importance (1-3), repeatable")
	cmd.Flags().StringVar(&rrule, "rrule", "", "Recurrence rule (RFC 5545)")
	cmd.Flags().IntVar(&maxOccurrences, "max-occurrences", 52, "Upper bound on generated events")
	cmd.MarkFlagRequired("creator")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("starts")
	cmd.MarkFlagRequired("ends")
	cmd.MarkFlagRequired("rrule")

	return cmd
}
