package commands

import (
	"address-distance-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var errNoDistance = errors.New("could not compute distance")

func getCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <from> <to>",
		Short: "Print the driving distance in meters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDistance(cmd.Context(), calc, cmd.OutOrStdout(), args[0], args[1])
		},
	}
	return cmd
}

func printDistance(ctx context.Context, c ports.DistanceCalculator, w io.Writer, from, to string) error {
	res, ok := c.GetDistance(ctx, from, to)
	if !ok {
		return errNoDistance
	}
	_, err := fmt.Fprintf(w, "%v\n", res.DistanceMeters)
	return err
}
