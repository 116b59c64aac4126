package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/paperarchive/corpus"
	"github.com/jonwraymond/paperarchive/engine"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the archive with text, date, and author filters",
	Long: `Search runs the engine's composed filters over the loaded snapshot and
prints the ranked results grouped by date, newest first. The text query
matches word prefixes against titles, authors, abstracts, and summaries,
falling back to a verbatim substring scan when no indexed word matches.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		state := engine.FilterState{Lang: corpus.LangEN}
		if len(args) == 1 {
			state.Query = args[0]
		}
		state.Date, _ = cmd.Flags().GetString("date")
		state.Author, _ = cmd.Flags().GetString("author")
		if lang, _ := cmd.Flags().GetString("lang"); lang == string(corpus.LangZH) {
			state.Lang = corpus.LangZH
		}

		view := eng.Recompute(state)
		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
			view = capView(view, limit)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(searchOutput(view))
		}

		printView(view)
		return nil
	},
}

func init() {
	searchCmd.Flags().String("date", "", "restrict to one archive day (YYYY-MM-DD)")
	searchCmd.Flags().String("author", "", "filter by author substring")
	searchCmd.Flags().String("lang", "en", "summary language (en or zh)")
	searchCmd.Flags().Int("limit", 0, "maximum papers to print (0 = all)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

type searchJSON struct {
	Count  int               `json:"count"`
	Dates  []string          `json:"dates"`
	Groups []searchGroupJSON `json:"groups"`
}

type searchGroupJSON struct {
	Date   string            `json:"date"`
	Papers []searchPaperJSON `json:"papers"`
}

type searchPaperJSON struct {
	PaperID string   `json:"paper_id"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Summary string   `json:"summary,omitempty"`
	PDFURL  string   `json:"pdf_url,omitempty"`
	Upvotes int      `json:"upvotes"`
}

func searchOutput(view engine.View) searchJSON {
	out := searchJSON{
		Count:  view.ResultCount,
		Dates:  view.VisibleDates,
		Groups: make([]searchGroupJSON, 0, len(view.Groups)),
	}
	for _, g := range view.Groups {
		group := searchGroupJSON{Date: g.Date}
		for _, p := range g.Papers {
			group.Papers = append(group.Papers, searchPaperJSON{
				PaperID: p.PaperID,
				Title:   p.Title,
				Authors: p.Authors,
				Summary: p.Summary(view.Lang),
				PDFURL:  p.PDFURL(),
				Upvotes: p.Upvotes,
			})
		}
		out.Groups = append(out.Groups, group)
	}
	return out
}

// capView truncates the view's groups to at most limit papers, keeping the
// reported total count intact.
func capView(view engine.View, limit int) engine.View {
	var groups []engine.DateGroup
	remaining := limit
	for _, g := range view.Groups {
		if remaining == 0 {
			break
		}
		papers := g.Papers
		if len(papers) > remaining {
			papers = papers[:remaining]
		}
		groups = append(groups, engine.DateGroup{Date: g.Date, Papers: papers})
		remaining -= len(papers)
	}
	visible := make([]string, len(groups))
	for i, g := range groups {
		visible[i] = g.Date
	}
	view.Groups = groups
	view.VisibleDates = visible
	return view
}

func printView(view engine.View) {
	if view.ResultCount == 0 {
		fmt.Println("no papers match")
		return
	}

	for _, g := range view.Groups {
		fmt.Printf("%s (%d papers)\n", g.Date, len(g.Papers))
		for _, p := range g.Papers {
			fmt.Printf("  [%3d] %s  %s\n", p.Upvotes, p.PaperID, p.Title)
		}
	}
	fmt.Printf("%d papers across %d days\n", view.ResultCount, len(view.Groups))
}
