package commands

import (
	"kochindex-backend/lib/serviceutil"
	"kochindex-backend/lib/sqliteutil"
	"kochindex-backend/services/crawler"
	"kochindex-backend/services/crawler/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var queueDb *string

func init() {
	queueDb = queueCmd.PersistentFlags().String("db", "kochindex.db", "The database holding the crawl queue.")
	queueCmd.AddCommand(queueListCmd)
	rootCmd.AddCommand(queueCmd)
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "The 'queue' subcommand allows you to inspect the crawl queue.",
}

var queueListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all pending user crawls.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		path := cfg.Database
		if path == "" {
			path = *queueDb
		}

		database, err := sqliteutil.OpenDB(db.Schema, path)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		pending, err := crawler.NewDBQueue(database).Pending(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list pending crawls", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"user id"})
		for _, userID := range pending {
			t.AppendRow(table.Row{userID})
		}
		t.Render()
	},
}
