package commands

import (
	"kochindex-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile <user id>",
	Short: "Fetches a user profile and prints its contents.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context(), readConfig())

		profile, err := client.Profile(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to fetch profile", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"field", "value"})
		t.AppendRow(table.Row{"id", profile.ID})
		t.AppendRow(table.Row{"username", profile.Username})
		t.AppendRow(table.Row{"about me", profile.AboutMe})
		for key, value := range profile.Details {
			t.AppendRow(table.Row{key, value})
		}
		t.AppendRow(table.Row{"friends", profile.FriendCount})
		t.AppendRow(table.Row{"recipes", profile.RecipeCount})
		t.AppendRow(table.Row{"collections", profile.CollectionCount})
		t.AppendRow(table.Row{"albums", profile.AlbumCount})
		t.AppendRow(table.Row{"threads", profile.ThreadCount})
		t.AppendRow(table.Row{"groups", profile.GroupCount})
		t.AppendRow(table.Row{"guides", profile.GuideCount})
		t.Render()

		if len(profile.Friends) > 0 {
			t = newTable()
			t.AppendHeader(table.Row{"friend", "id", "link"})
			for _, friend := range profile.Friends {
				t.AppendRow(table.Row{friend.Username, friend.ID, friend.Link})
			}
			t.Render()
		}
		if len(profile.Collections) > 0 {
			t = newTable()
			t.AppendHeader(table.Row{"collection", "recipes"})
			for _, collection := range profile.Collections {
				t.AppendRow(table.Row{collection.URL, collection.RecipeCount})
			}
			t.Render()
		}
		if len(profile.Groups) > 0 {
			t = newTable()
			t.AppendHeader(table.Row{"group", "url"})
			for _, group := range profile.Groups {
				t.AppendRow(table.Row{group.Name, group.URL})
			}
			t.Render()
		}
		if len(profile.Guides) > 0 {
			t = newTable()
			t.AppendHeader(table.Row{"guide", "url"})
			for _, guide := range profile.Guides {
				t.AppendRow(table.Row{guide.Title, guide.URL})
			}
			t.Render()
		}
	},
}
