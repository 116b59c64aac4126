package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/paperarchive/engine"
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List the archive's dates with prev/next navigation",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		selected, _ := cmd.Flags().GetString("date")
		view := eng.Recompute(engine.FilterState{Date: selected})

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"dates": eng.Snapshot().Dates,
				"nav":   view.Nav,
			})
		}

		for _, d := range eng.Snapshot().Dates {
			marker := "  "
			if d == view.Nav.SelectedDate {
				marker = "* "
			}
			fmt.Printf("%s%s\n", marker, d)
		}
		if view.Nav.PrevEnabled {
			fmt.Printf("prev: %s\n", view.Nav.PrevDate)
		}
		if view.Nav.NextEnabled {
			fmt.Printf("next: %s\n", view.Nav.NextDate)
		}
		return nil
	},
}

func init() {
	datesCmd.Flags().String("date", "", "selected date (YYYY-MM-DD); defaults to the newest")
	datesCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(datesCmd)
}
