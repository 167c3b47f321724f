package commands

import (
	"address-distance-service/internal/adapters/repositories"
	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/db"
	"address-distance-service/internal/services"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compute every pending trip stored in DATABASE_URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required")
			}

			conn, err := db.Open(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer conn.Close()

			repo := repositories.NewPgTripRepository(conn)
			trips, err := services.ProcessPendingTrips(cmd.Context(), repo, calc)
			if err != nil {
				return err
			}

			renderTrips(cmd.OutOrStdout(), trips)
			return nil
		},
	}
	return cmd
}

func renderTrips(w io.Writer, trips []*domain.Trip) {
	if len(trips) == 0 {
		fmt.Fprintln(w, "no pending trips")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "From", "To", "Status", "Distance (m)", "Duration (s)"})
	for _, t := range trips {
		table.Append([]string{
			strconv.Itoa(t.TripID),
			t.StartAddress,
			t.EndAddress,
			string(t.Status),
			formatOptional(t.DistanceMeters),
			formatOptional(t.DurationSeconds),
		})
	}
	table.Render()
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
