package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/paperarchive/engine"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print the daily overview for a date",
	Long: `Overview resolves and parses the synthesized daily summary for the
selected date (the newest date when none is given) and prints its blocks:
headings, bulleted and numbered lists, and paragraphs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		date, _ := cmd.Flags().GetString("date")
		view := eng.Recompute(engine.FilterState{Date: date})

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"overview": view.Overview,
			})
		}

		if view.Overview == nil {
			fmt.Println("no overview for this date")
			return nil
		}

		printOverview(view.Overview)
		return nil
	},
}

func init() {
	overviewCmd.Flags().String("date", "", "archive day (YYYY-MM-DD); defaults to the newest")
	overviewCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(overviewCmd)
}

func printOverview(ov *engine.Overview) {
	if ov.Date != "" {
		fmt.Printf("== %s ==\n", ov.Date)
	}
	for _, b := range ov.Blocks {
		fmt.Println(b.Heading)
		for i, item := range b.Items {
			switch b.Kind {
			case engine.BlockUnordered:
				fmt.Printf("  - %s\n", item)
			case engine.BlockOrdered:
				fmt.Printf("  %d. %s\n", i+1, item)
			default:
				fmt.Printf("  %s\n", item)
			}
		}
		fmt.Println()
	}
}
