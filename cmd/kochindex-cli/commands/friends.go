package commands

import (
	"kochindex-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(friendsCmd)
}

var friendsCmd = &cobra.Command{
	Use:   "friends <user id>",
	Short: "Fetches the friends list of a user and prints it.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context(), readConfig())

		friends, err := client.Friends(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to fetch friends", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"username", "id", "link"})
		for _, friend := range friends {
			t.AppendRow(table.Row{friend.Username, friend.ID, friend.Link})
		}
		t.Render()
	},
}
