package crawler

import (
	"context"
	"database/sql"
	"time"

	"kochindex-backend/services/crawler/db"
)

// Queue schedules user crawls. Enqueueing has to be cheap and idempotent
// for already-scheduled ids; the dedup gate calls it without waiting for
// the crawl itself.
type Queue interface {
	EnqueueUser(ctx context.Context, userID string) error
}

// DBQueue keeps pending crawls in the service database. Re-enqueueing an
// id that is already in the table is a no-op.
type DBQueue struct {
	qry *db.Queries
}

func NewDBQueue(database *sql.DB) DBQueue {
	return DBQueue{qry: db.New(database)}
}

func (q DBQueue) EnqueueUser(ctx context.Context, userID string) error {
	return q.qry.EnqueueCrawl(ctx, db.EnqueueCrawlParams{
		UserID:     userID,
		EnqueuedAt: time.Now().Unix(),
	})
}

func (q DBQueue) Pending(ctx context.Context) ([]string, error) {
	return q.qry.ListPendingCrawls(ctx)
}

func (q DBQueue) MarkDone(ctx context.Context, userID string) error {
	return q.qry.MarkCrawlDone(ctx, userID)
}
