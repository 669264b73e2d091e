package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/store"
	"github.com/spf13/cobra"
)

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Browse the journey route",
}

var journeyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every country and landmark with the current position",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := content.Load()
		if catalog.Empty() {
			return fmt.Errorf("no journey content found")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		var data *store.SnapshotData
		if snap != nil {
			data = &snap.Data
		}
		progress := session.NewProgress(data, catalog)

		fmt.Printf("%-4s %-20s %-28s %s\n", "", "Country", "Landmark", "Status")
		fmt.Println(strings.Repeat("─", 64))

		reached := true
		landmarks := 0
		for _, country := range catalog.Countries() {
			for _, lm := range catalog.LandmarksOf(country.ID) {
				landmarks++
				current := lm.ID == progress.LandmarkID && !progress.JourneyCompleted
				if current {
					reached = false
				}

				status := "upcoming"
				switch {
				case current:
					status = fmt.Sprintf("here (score %d/%d)", progress.Score, session.MaxScore)
				case reached || progress.JourneyCompleted:
					status = "visited"
				}
				fmt.Printf("%-4s %-20s %-28s %s\n",
					country.FlagEmoji, country.Name, lm.DisplayName, status)
			}
		}

		fmt.Printf("\n%d landmarks across %d countries\n", landmarks, len(catalog.Countries()))
		if progress.JourneyCompleted {
			fmt.Println("Journey complete! 🏆")
		}
		return nil
	},
}

func init() {
	journeyCmd.AddCommand(journeyListCmd)
}
