package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"kochindex-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recipeCmd)
	rootCmd.AddCommand(ratingsCmd)
}

var recipeCmd = &cobra.Command{
	Use:   "recipe <recipe id>",
	Short: "Fetches a recipe from the API and prints the raw JSON.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context(), readConfig())

		recipe, err := client.GetRecipe(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to fetch recipe", err)
		}

		var out bytes.Buffer
		err = json.Indent(&out, recipe, "", "  ")
		if err != nil {
			serviceutil.Fatal("failed to format recipe", err)
		}
		fmt.Println(out.String())
	},
}

var ratingsCmd = &cobra.Command{
	Use:   "ratings <recipe id>",
	Short: "Fetches the rating page of a recipe and prints every vote.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context(), readConfig())

		rating, err := client.Ratings(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to fetch ratings", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"voting", "name", "voter", "date"})
		for _, entry := range rating.Entries {
			t.AppendRow(table.Row{
				entry.Voting,
				entry.Name,
				entry.Voter.String(),
				entry.Date,
			})
		}
		t.Render()
	},
}
