package commands

import (
	"log/slog"
	"time"

	"kochindex-backend/lib/serviceutil"
	"kochindex-backend/lib/sqliteutil"
	"kochindex-backend/lib/telemetry"
	"kochindex-backend/services/crawler"
	"kochindex-backend/services/crawler/db"

	"github.com/spf13/cobra"
)

var crawlDb *string

func init() {
	crawlDb = crawlCmd.Flags().String("db", "kochindex.db", "The database to write crawl results to.")
	rootCmd.AddCommand(crawlCmd)
}

var crawlCmd = &cobra.Command{
	Use:   "crawl [--db <path/to/output.db>] <seed user ids...>",
	Short: "Crawls user profiles breadth-first, starting from the given seed users.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		path := cfg.Database
		if path == "" {
			path = *crawlDb
		}

		database, err := sqliteutil.OpenDB(db.Schema, path)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer database.Close()

		ctx := serviceutil.SignalContext()
		telemetry.InstrumentPerfStats(ctx)
		client := createClient(ctx, cfg)

		queue := crawler.NewDBQueue(database)
		service := crawler.NewService(database, queue, client)

		for _, seed := range args {
			err := queue.EnqueueUser(ctx, seed)
			if err != nil {
				serviceutil.Fatal("failed to enqueue seed user", err)
			}
		}

		t1 := time.Now()
		crawled := 0
		for ctx.Err() == nil {
			pending, err := queue.Pending(ctx)
			if err != nil {
				serviceutil.Fatal("failed to list pending crawls", err)
			}
			if len(pending) == 0 {
				break
			}
			for _, userID := range pending {
				if ctx.Err() != nil {
					break
				}
				profile, err := service.IngestProfile(ctx, userID)
				if err != nil {
					slog.Warn("failed to crawl user", "user", userID, "err", err.Error())
				} else {
					slog.Info("crawled user", "user", userID, "username", profile.Username, "friends", len(profile.Friends))
					crawled++
				}
				err = queue.MarkDone(ctx, userID)
				if err != nil {
					serviceutil.Fatal("failed to mark crawl done", err)
				}
			}
		}
		t2 := time.Now()

		slog.Info("crawl finished", "users", crawled, "seconds", t2.Sub(t1).Seconds())
	},
}
