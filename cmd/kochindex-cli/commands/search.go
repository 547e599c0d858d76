package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"kochindex-backend/lib/scrapers/chefkoch"
	"kochindex-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var orderByNames = map[string]chefkoch.OrderBy{
	"relevance":  chefkoch.OrderByRelevance,
	"rating":     chefkoch.OrderByRating,
	"difficulty": chefkoch.OrderByDifficulty,
	"max-time":   chefkoch.OrderByMaxTimeNeeded,
	"date":       chefkoch.OrderByDate,
	"random":     chefkoch.OrderByRandom,
	"shuffle":    chefkoch.OrderByDailyShuffle,
}

var (
	searchLimit     *int
	searchOffset    *int
	searchMinRating *int
	searchMaxTime   *int
	searchOrderBy   *string
)

func init() {
	searchLimit = searchCmd.Flags().Int("limit", 20, "Maximum amount of results to fetch.")
	searchOffset = searchCmd.Flags().Int("offset", 0, "Result offset for pagination.")
	searchMinRating = searchCmd.Flags().Int("min-rating", 0, "Only return recipes rated at least this.")
	searchMaxTime = searchCmd.Flags().Int("max-time", 0, "Only return recipes that take at most this many minutes.")
	searchOrderBy = searchCmd.Flags().String("order-by", "relevance", "Result order: relevance, rating, difficulty, max-time, date, random or shuffle.")
	rootCmd.AddCommand(searchCmd)
}

type searchResult struct {
	Id    string `json:"id"`
	Title string `json:"title"`
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Searches for recipes and prints a result table.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		orderBy, ok := orderByNames[*searchOrderBy]
		if !ok {
			serviceutil.Fatal("unknown order", fmt.Errorf("%q", *searchOrderBy))
		}

		client := createClient(cmd.Context(), readConfig())

		results, err := client.SearchRecipes(cmd.Context(), chefkoch.SearchRequest{
			Query:         args[0],
			Limit:         *searchLimit,
			Offset:        *searchOffset,
			MinimumRating: *searchMinRating,
			MaximumTime:   *searchMaxTime,
			OrderBy:       orderBy,
		})
		if err != nil {
			serviceutil.Fatal("search failed", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"id", "title"})
		for _, raw := range results {
			var result searchResult
			err := json.Unmarshal(raw, &result)
			if err != nil {
				slog.Warn("skipping undecodable search result", "err", err.Error())
				continue
			}
			t.AppendRow(table.Row{result.Id, result.Title})
		}
		t.Render()
	},
}
