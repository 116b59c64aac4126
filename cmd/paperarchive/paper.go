package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/paperarchive/corpus"
)

var paperCmd = &cobra.Command{
	Use:   "paper <id>",
	Short: "Show one paper's full record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		p := eng.Snapshot().PaperByID(args[0])
		if p == nil {
			return fmt.Errorf("paper %s not found", args[0])
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(p)
		}

		printPaper(p)
		return nil
	},
}

func init() {
	paperCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(paperCmd)
}

func printPaper(p *corpus.Paper) {
	fmt.Printf("%s (%s, %d upvotes)\n", p.Title, p.Date, p.Upvotes)
	fmt.Printf("  id:      %s\n", p.PaperID)
	if len(p.Authors) > 0 {
		fmt.Printf("  authors: %s\n", strings.Join(p.Authors, ", "))
	}
	if url := p.PDFURL(); url != "" {
		fmt.Printf("  pdf:     %s\n", url)
	}
	if p.GitHubURL != "" {
		fmt.Printf("  code:    %s\n", p.GitHubURL)
	}
	if summary := p.Summary(corpus.LangEN); summary != "" {
		fmt.Printf("\n%s\n", summary)
	}
}
