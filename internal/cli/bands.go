package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/turntable/internal/bandapi"
)

func newBandsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "List the bands served by the API and exit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			bands, err := bandapi.New(cfg.APIURL).Bands(ctx)
			if err != nil {
				return fmt.Errorf("list bands: %w", err)
			}
			printBands(cmd.OutOrStdout(), bands, time.Now())
			return nil
		},
	}
}

// printBands writes one line per band. The band for today is starred.
func printBands(w io.Writer, bands []bandapi.Band, now time.Time) {
	today := -1
	if len(bands) > 0 {
		today = bandapi.ForToday(len(bands), now)
	}
	for i, b := range bands {
		mark := " "
		if i == today {
			mark = "*"
		}
		songs := b.Tracks().Len()
		unit := "songs"
		if songs == 1 {
			unit = "song"
		}
		fmt.Fprintf(w, "%s %4d  %-30s %-30s %d %s\n",
			mark, b.ID, b.Name, strings.Join(b.GenreNames(), ", "), songs, unit)
	}
}
